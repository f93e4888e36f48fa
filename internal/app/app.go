// Package app wires the deployctl components together: configuration,
// logger, command executor, the git/compose/proxy clients, the deployer and,
// in serve mode, the dispatcher and webhook server.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/africonnect/deployctl/internal/compose"
	"github.com/africonnect/deployctl/internal/config"
	"github.com/africonnect/deployctl/internal/core"
	"github.com/africonnect/deployctl/internal/deployer"
	"github.com/africonnect/deployctl/internal/execx"
	"github.com/africonnect/deployctl/internal/gitutil"
	"github.com/africonnect/deployctl/internal/jobs"
	"github.com/africonnect/deployctl/internal/journal"
	"github.com/africonnect/deployctl/internal/proxy"
	"github.com/africonnect/deployctl/internal/server"
)

const deployQueueSize = 8

// NewDeployer builds a Deployer with the production collaborators: git,
// docker compose and systemctl, all invoked through the os/exec runner.
// Progress lines go to out (stdout when nil).
func NewDeployer(cfg *config.Config, out io.Writer, logger *slog.Logger) core.Deployer {
	runner := execx.NewRunner(logger)
	git := gitutil.NewClient(runner, cfg.Git.Remote, cfg.Git.Branch, logger)
	stack := compose.NewClient(runner, cfg.ComposeFile, logger)
	edge := proxy.NewSystemdReloader(runner, cfg.ProxyService, logger)
	return deployer.New(cfg, git, stack, edge, out, logger)
}

// NewJournal returns the deployment journal, or nil when no journal path is
// configured.
func NewJournal(cfg *config.Config, logger *slog.Logger) *journal.Journal {
	if cfg.JournalPath == "" {
		return nil
	}
	return journal.New(cfg.JournalPath, logger)
}

// App holds the serve-mode components.
type App struct {
	cfg        *config.Config
	server     *server.Server
	dispatcher core.DeployDispatcher
	logger     *slog.Logger
}

// NewApp sets up the webhook-driven application.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg.Server.WebhookSecret == "" {
		return nil, fmt.Errorf("GITHUB_WEBHOOK_SECRET must be set for serve mode")
	}

	jnl := NewJournal(cfg, logger)
	dep := NewDeployer(cfg, nil, logger)
	dispatcher := jobs.NewDispatcher(dep, jnl, deployQueueSize, logger)
	httpServer := server.NewServer(cfg, dispatcher, jnl, logger)

	logger.Info("deployctl initialized",
		"app_dir", cfg.AppDir,
		"branch", cfg.Git.Branch,
		"manifest", cfg.ManifestPath,
		"proxy", cfg.ProxyService,
	)

	return &App{
		cfg:        cfg,
		server:     httpServer,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

// Start runs the HTTP server and blocks until shutdown or error.
func (a *App) Start() error {
	a.logger.Info("starting deployctl", "port", a.cfg.Server.Port)
	return a.server.Start()
}

// Stop shuts the application down cleanly: the server first so no new
// deployments are accepted, then the dispatcher so in-flight runs finish.
func (a *App) Stop() error {
	a.logger.Info("shutting down deployctl")

	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	a.dispatcher.Stop()

	if serverErr != nil {
		return serverErr
	}
	a.logger.Info("deployctl stopped")
	return nil
}
