package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bfctl/internal/app"
)

func init() {
	rootCmd.AddCommand(devCmd)
	devCmd.Flags().StringP("input", "i", "", "input consumed by ','")
	addTapeLimitFlag(devCmd)
}

var devCmd = &cobra.Command{
	Use:   "dev FILE",
	Short: "Re-run a program every time its file changes",
	Long:  "Run FILE, then watch it and run again after every save. Input runs out as zeros. Stop with Ctrl+C.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return app.Dev(ctx, args[0], inputFlag(cmd), cmd.OutOrStdout(), tapeLimit(cmd))
	},
}
