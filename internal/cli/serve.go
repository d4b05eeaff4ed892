package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bfctl/internal/bf"
	"bfctl/internal/server"
	"bfctl/internal/system"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "address to bind (host:port, default from config)")
	serveCmd.Flags().Int("max-steps", 0, "step budget per request (default from config)")
	serveCmd.Flags().Bool("quiet", false, "disable the access log")
	addTapeLimitFlag(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interpreter over a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		quiet, _ := cmd.Flags().GetBool("quiet")
		if addr == "" {
			addr = conf.Server.Addr
		}
		if maxSteps <= 0 {
			maxSteps = conf.Server.MaxSteps
		}
		srv := &server.Server{Addr: addr, MaxSteps: maxSteps, Quiet: quiet, Engine: []bf.Option{tapeLimit(cmd)}}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				system.Logger.Info("api server stopped")
				return nil
			}
			return err
		}
		return nil
	},
}
