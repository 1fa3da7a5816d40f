package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/tyson/config"
	"github.com/ezrec/tyson/debugger"
	"github.com/ezrec/tyson/emulator"
	"github.com/ezrec/tyson/engine"
	"github.com/ezrec/tyson/image"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var corePath string
	var source bool
	var trace bool
	var step bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Execute an image, or an assembly source with --asm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := config.Load(configPath)
			if err != nil {
				return
			}
			if cmd.Flags().Changed("trace") {
				cfg.Engine.Traced = trace
			}
			if cmd.Flags().Changed("step") {
				cfg.Engine.SingleStep = step
			}
			if cmd.Flags().Changed("core") {
				cfg.Core.Path = corePath
			}

			emu := emulator.NewEmulator(cfg.Limits())
			emu.Verbose = verbose
			emu.Traced = cfg.Engine.Traced
			emu.SingleStep = cfg.Engine.SingleStep

			var img *image.Image
			if source {
				img, err = assembleFile(emu, args[0])
			} else {
				img, err = emulator.Load(args[0])
			}
			if err != nil {
				return
			}

			if emu.Traced && emu.SingleStep {
				rl, rerr := debugger.NewReadline(cfg.Prompt())
				if rerr != nil {
					return rerr
				}
				defer rl.Close()
				emu.Debugger = debugger.NewDebugger(rl)
			}

			emu.Reset(img)
			status, err := emu.Run()
			if verbose {
				log.Printf("%v: exit %v", args[0], status)
			}

			if status == engine.EXIT_FAULT && len(cfg.Core.Path) != 0 {
				err = errors.Join(err, writeCore(emu, cfg.Core.Path, err))
			}

			return
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "tyson.toml", "Configuration file")
	cmd.Flags().StringVar(&corePath, "core", "", "Write a core file on a fatal trap")
	cmd.Flags().BoolVar(&source, "asm", false, "FILE is assembly source")
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "Trace each instruction")
	cmd.Flags().BoolVarP(&step, "step", "s", true, "Start traced runs in the debugger")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")

	return cmd
}

func assembleFile(emu *emulator.Emulator, path string) (img *image.Image, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err := emu.Assemble(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	img = prog.Image()
	return
}

func writeCore(emu *emulator.Emulator, path string, fault error) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	return emu.WriteCore(ouf, fault)
}
