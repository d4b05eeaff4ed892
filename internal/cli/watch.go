package cli

import (
	"github.com/spf13/cobra"

	"bfctl/internal/app"
	"bfctl/internal/system"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	addSourceFlags(watchCmd)
	watchCmd.Flags().Duration("delay", 0, "pause between steps (default from config)")
}

var watchCmd = &cobra.Command{
	Use:   "watch [SOURCE]",
	Short: "Animate the tape while a program runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		delay, _ := cmd.Flags().GetDuration("delay")
		if delay <= 0 {
			delay = conf.Delay
		}
		rep, err := app.Watch(src, inputFlag(cmd), delay, tapeLimit(cmd))
		if err == nil {
			system.Logger.Debug("watch finished", "steps", rep.Steps, "quit", rep.Quit)
		}
		return describe(src, err)
	},
}
