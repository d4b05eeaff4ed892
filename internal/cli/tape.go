package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bfctl/internal/debugger"
	"bfctl/internal/store"
)

func init() { rootCmd.AddCommand(tapeCmd) }

var tapeCmd = &cobra.Command{
	Use:   "tape FILE",
	Short: "Print a tape saved with run --dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := store.LoadSnapshot(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pointer: %d\n", snap.Pointer)
		fmt.Fprintf(out, "cells:   %d\n", len(snap.Cells))
		fmt.Fprintln(out, debugger.FormatTape(snap))
		return nil
	},
}
