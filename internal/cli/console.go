package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"bfctl/internal/debugger"
)

func init() {
	rootCmd.AddCommand(consoleCmd)
	addTapeLimitFlag(consoleCmd)
}

var consoleCmd = &cobra.Command{
	Use:     "console",
	Aliases: []string{"repl"},
	Short:   "Read-eval-print loop: one program per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		return debugger.Console(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), debugger.WithEngine(tapeLimit(cmd)))
	},
}
