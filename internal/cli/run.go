package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bfctl/internal/bf"
	"bfctl/internal/store"
	"bfctl/internal/system"
)

func init() {
	rootCmd.AddCommand(runCmd)
	addSourceFlags(runCmd)
	runCmd.Flags().Bool("interactive", false, "prompt for more input when it runs out")
	runCmd.Flags().String("eof", "", "when input runs out without --interactive: fail or zero (default from config)")
	runCmd.Flags().Bool("trace", false, "log every executed command at debug level")
	runCmd.Flags().String("dump", "", "save the final tape as JSON to `FILE`")
}

var runCmd = &cobra.Command{
	Use:   "run [SOURCE]",
	Short: "Run a program to completion and print its output",
	Example: `  bfctl run ',[>,]<[.<]' -i hello --eof zero
  bfctl run -f prog.bf --interactive
  echo '++++++++[>++++++++<-]>+.' | bfctl run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		interactive, _ := cmd.Flags().GetBool("interactive")
		trace, _ := cmd.Flags().GetBool("trace")
		dump, _ := cmd.Flags().GetString("dump")
		eof, _ := cmd.Flags().GetString("eof")
		if eof == "" {
			eof = conf.EOF
		}
		if eof == "prompt" {
			interactive = true
		}

		opts := []bf.ExecOption{bf.WithStdout(cmd.OutOrStdout())}
		if !interactive {
			policy, ok := bf.ParseEOF(eof)
			if !ok {
				return fmt.Errorf("--eof: unknown policy %q (want fail or zero)", eof)
			}
			opts = append(opts, bf.WithEOF(policy))
		} else if stdinIsTerminal() {
			opts = append(opts, bf.WithPrompter(huhPrompter()))
		}
		engineOpts := []bf.Option{tapeLimit(cmd)}
		if trace {
			_ = system.SetLevel("debug")
			engineOpts = append(engineOpts, bf.WithTrace(bf.LogTrace(system.Logger)))
		}
		opts = append(opts, bf.WithEngine(engineOpts...))

		snap, runErr := bf.Execute(src, inputFlag(cmd), interactive, opts...)
		if dump != "" && snap.Cells != nil {
			if err := store.SaveSnapshot(dump, snap); err != nil {
				return err
			}
			system.Logger.Info("tape saved", "path", dump, "cells", len(snap.Cells))
		}
		if runErr != nil {
			return describe(src, runErr)
		}
		return nil
	},
}

func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
