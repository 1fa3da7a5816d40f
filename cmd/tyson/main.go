// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tyson",
		Short:         "tyson bytecode engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newRunCmd(), newAsmCmd(), newDisCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		os.Exit(1)
	}
}
