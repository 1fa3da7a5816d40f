package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ezrec/tyson/emulator"
	"github.com/ezrec/tyson/engine"
)

func newAsmCmd() *cobra.Command {
	var output string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "asm SRC",
		Short: "Assemble a source file into an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu := emulator.NewEmulator(engine.DefaultLimits)
			emu.Verbose = verbose

			img, err := assembleFile(emu, args[0])
			if err != nil {
				return
			}

			n, err := emulator.Save(img, output)
			if err != nil {
				return
			}

			if verbose {
				log.Printf("%v: %d bytes, %v", output, n, img.Header())
			}

			return
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "a.tyi", "Output image")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")

	return cmd
}
