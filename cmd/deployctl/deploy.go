package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/africonnect/deployctl/internal/app"
	"github.com/africonnect/deployctl/internal/config"
	"github.com/africonnect/deployctl/internal/core"
	"github.com/africonnect/deployctl/internal/journal"
	"github.com/africonnect/deployctl/internal/logger"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Run one deployment now.",
	Long: `Synchronizes the application directory with the remote branch, rebuilds
the image when the dependency manifest changed, applies the compose stack and
reloads the edge proxy. Fails fast: the first failing step aborts the run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		log := logger.NewLogger(cfg.Log, nil)
		slog.SetDefault(log)

		req := &core.DeployRequest{
			Trigger:    core.TriggerManual,
			ReceivedAt: time.Now(),
		}

		dep := app.NewDeployer(cfg, cmd.OutOrStdout(), log)
		res, runErr := dep.Run(cmd.Context(), req)

		if jnl := app.NewJournal(cfg, log); jnl != nil {
			if err := jnl.Append(journal.NewEntry(req, res, runErr)); err != nil {
				log.Error("failed to record deployment", "error", err)
			}
		}

		return runErr
	},
}
