package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"bfctl/internal/app"
	"bfctl/internal/debugger"
)

func init() {
	rootCmd.AddCommand(debugCmd)
	addSourceFlags(debugCmd)
	debugCmd.Flags().Bool("tui", false, "use the full-screen debugger")
	debugCmd.Flags().Duration("delay", 0, "pause between steps in watch mode (default from config)")
}

var debugCmd = &cobra.Command{
	Use:   "debug [SOURCE]",
	Short: "Step through a program interactively",
	Long: "Step through a program one command at a time.\n\n" +
		"Line console keys: n step, s skip, e run to end, w watch, o show output, q quit.\n" +
		"The --tui view adds clickable buttons and a trace pane.",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		tui, _ := cmd.Flags().GetBool("tui")
		delay, _ := cmd.Flags().GetDuration("delay")
		if delay <= 0 {
			delay = conf.DebugDelay
		}
		if tui {
			_, err := app.Debug(src, inputFlag(cmd), delay, tapeLimit(cmd))
			return describe(src, err)
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		err = debugger.StepDebug(ctx, src, inputFlag(cmd), cmd.InOrStdin(), cmd.OutOrStdout(), debugger.WithDelay(delay), debugger.WithEngine(tapeLimit(cmd)))
		return describe(src, err)
	},
}
