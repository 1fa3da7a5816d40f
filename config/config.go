// Package config loads tyson.toml runtime configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/tyson/debugger"
	"github.com/ezrec/tyson/engine"
)

// Config is a tyson.toml runtime configuration.
type Config struct {
	Engine Engine `toml:"engine"`
	Debug  Debug  `toml:"debug"`
	Core   Core   `toml:"core"`
}

// Engine configures engine capacities and tracing.
type Engine struct {
	StackSize     uint64 `toml:"stack_size"`
	RecurLimit    int    `toml:"recur_limit"`
	GcolThreshold uint64 `toml:"gcol_threshold"`
	Traced        bool   `toml:"traced"`
	SingleStep    bool   `toml:"single_step"`
}

// Debug configures the operator prompt.
type Debug struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// Core configures post-mortem dumps of fatal traps.
type Core struct {
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine: Engine{
			StackSize:     engine.STACK_SIZE,
			RecurLimit:    engine.RECUR_LIMIT,
			GcolThreshold: engine.GCOL_THRESHOLD,
			SingleStep:    true,
		},
		Debug: Debug{
			Prompt: debugger.DEFAULT_PROMPT,
		},
	}
}

// Load parses a configuration file over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	err = cfg.Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses TOML text over the current values.
func (cfg *Config) Decode(text string) (err error) {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		err = ErrKeyUnknown(undecoded[0].String())
		return
	}

	return
}

// Limits returns the engine capacities.
func (cfg *Config) Limits() engine.Limits {
	return engine.Limits{
		StackSize:     cfg.Engine.StackSize,
		RecurLimit:    cfg.Engine.RecurLimit,
		GcolThreshold: cfg.Engine.GcolThreshold,
	}
}

// Prompt returns the operator prompt configuration.
func (cfg *Config) Prompt() debugger.Config {
	return debugger.Config{
		Prompt:      cfg.Debug.Prompt,
		HistoryFile: cfg.Debug.HistoryFile,
	}
}
