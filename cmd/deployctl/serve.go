package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/africonnect/deployctl/internal/app"
	"github.com/africonnect/deployctl/internal/config"
	"github.com/africonnect/deployctl/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook server and deploy on pushes to the deployment branch.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		log := logger.NewLogger(cfg.Log, nil)
		slog.SetDefault(log)

		a, err := app.NewApp(cfg, log)
		if err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(cmd.Context())

		g.Go(func() error {
			return a.Start()
		})

		g.Go(func() error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case <-quit:
				log.Info("received shutdown signal")
			case <-gctx.Done():
			}
			return a.Stop()
		})

		return g.Wait()
	},
}
