package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bfctl/internal/config"
	"bfctl/internal/system"
)

// conf is the loaded configuration; flags override it per command.
var conf = config.Default()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bfctl",
	Short: "bfctl – run, step and watch Brainfuck programs",
	Long: "bfctl interprets Brainfuck programs on a sparse two-way tape.\n" +
		"It can run them, step through them in a debugger, animate the tape,\n" +
		"or serve them over a small JSON API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			system.Logger.Warn("config not loaded, using defaults", "err", err)
		}
		conf = c
		if err := system.SetLevel(conf.LogLevel); err != nil {
			system.Logger.Warn("ignoring log level", "err", err)
		}
		if verbose {
			_ = system.SetLevel("debug")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
