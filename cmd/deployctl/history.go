package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/africonnect/deployctl/internal/app"
	"github.com/africonnect/deployctl/internal/config"
	"github.com/africonnect/deployctl/internal/logger"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent deployment runs from the journal.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		log := logger.NewLogger(cfg.Log, nil)
		slog.SetDefault(log)

		jnl := app.NewJournal(cfg, log)
		if jnl == nil {
			return fmt.Errorf("deployment history is not configured, set JOURNAL_PATH")
		}

		entries, err := jnl.List(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no deployments recorded yet")
			return nil
		}

		out := cmd.OutOrStdout()
		for _, e := range entries {
			rebuilt := ""
			if e.ImageRebuilt {
				rebuilt = " (image rebuilt)"
			}
			fmt.Fprintf(out, "%s  %-9s %-8s %s -> %s%s\n",
				e.FinishedAt.Format("2006-01-02 15:04:05"),
				e.Status,
				e.Trigger,
				shortRev(e.PreviousRevision),
				shortRev(e.NewRevision),
				rebuilt,
			)
			if e.Error != "" {
				fmt.Fprintf(out, "    error: %s\n", e.Error)
			}
		}
		return nil
	},
}

func shortRev(rev string) string {
	if rev == "" {
		return "-"
	}
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

func init() { //nolint:gochecknoinits // Cobra's init function for flag registration
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show")
}
