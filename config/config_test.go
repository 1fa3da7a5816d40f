package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tyson/engine"
)

func TestLoad_Missing(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "tyson.toml"))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
	assert.Equal(engine.DefaultLimits, cfg.Limits())
	assert.True(cfg.Engine.SingleStep)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "tyson.toml")
	err := os.WriteFile(path, []byte(`
[engine]
stack_size = 4096
traced = true

[debug]
prompt = "tyson> "
history_file = "/tmp/tyson_history"

[core]
path = "tyson.core"
`), 0o644)
	assert.NoError(err)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(uint64(4096), cfg.Engine.StackSize)
	assert.Equal(engine.RECUR_LIMIT, cfg.Engine.RecurLimit)
	assert.Equal(uint64(engine.GCOL_THRESHOLD), cfg.Engine.GcolThreshold)
	assert.True(cfg.Engine.Traced)
	assert.True(cfg.Engine.SingleStep)
	assert.Equal("tyson> ", cfg.Prompt().Prompt)
	assert.Equal("/tmp/tyson_history", cfg.Prompt().HistoryFile)
	assert.Equal("tyson.core", cfg.Core.Path)
}

func TestDecode_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"[engine]\nstack_size = \"big\"\n",
		"[engine\n",
		"[engine]\nturbo = true\n",
	}

	for _, text := range table {
		cfg := Default()
		assert.Error(cfg.Decode(text), text)
	}

	cfg := Default()
	err := cfg.Decode("[debug]\ncolour = 1\n")
	assert.Equal(ErrKeyUnknown("debug.colour"), err)
}
