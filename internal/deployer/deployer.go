// Package deployer runs the deployment procedure: sync the working tree to
// the remote branch, rebuild the image when a rebuild trigger changed, apply
// the compose stack and reload the edge proxy. The procedure is strictly
// sequential and fail-fast; the first failing step aborts the run with no
// compensating rollback.
package deployer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/africonnect/deployctl/internal/config"
	"github.com/africonnect/deployctl/internal/core"
)

var stepPrefix = color.New(color.FgCyan, color.Bold).Sprint("==>")

// Deployer implements core.Deployer.
type Deployer struct {
	cfg     *config.Config
	git     core.GitSyncer
	compose core.ComposeRunner
	proxy   core.ProxyReloader
	out     io.Writer
	logger  *slog.Logger
}

// New returns a Deployer. Progress lines are written to out; passing nil
// defaults to stdout.
func New(cfg *config.Config, git core.GitSyncer, compose core.ComposeRunner, proxy core.ProxyReloader, out io.Writer, logger *slog.Logger) *Deployer {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Deployer{
		cfg:     cfg,
		git:     git,
		compose: compose,
		proxy:   proxy,
		out:     out,
		logger:  logger,
	}
}

// Run executes one deployment. The application directory is checked before
// any external tool is invoked; a missing directory yields
// core.ErrAppDirNotFound.
func (d *Deployer) Run(ctx context.Context, req *core.DeployRequest) (*core.Result, error) {
	if req == nil {
		req = &core.DeployRequest{Trigger: core.TriggerManual}
	}
	started := time.Now()
	dir := d.cfg.AppDir

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", core.ErrAppDirNotFound, dir)
	}
	d.stepf("Deploying %s (trigger: %s)", dir, req.Trigger)

	prev, err := d.git.HeadRevision(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("capture baseline revision: %w", err)
	}
	d.stepf("Current revision is %s", shortRev(prev))

	d.stepf("Syncing source with %s", d.cfg.RemoteRef())
	if err := d.git.Fetch(ctx, dir); err != nil {
		return nil, fmt.Errorf("fetch updates: %w", err)
	}
	if err := d.git.ResetHard(ctx, dir, d.cfg.RemoteRef()); err != nil {
		return nil, fmt.Errorf("reset working tree: %w", err)
	}
	// Normally a no-op after the hard reset; keeps the branch pointer
	// current when the reset target was already local.
	if err := d.git.Pull(ctx, dir); err != nil {
		return nil, fmt.Errorf("pull branch: %w", err)
	}

	next, err := d.git.HeadRevision(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("capture new revision: %w", err)
	}

	res := &core.Result{
		Trigger:          req.Trigger,
		PreviousRevision: prev,
		NewRevision:      next,
		StartedAt:        started,
	}

	if res.UpToDate() {
		d.stepf("Source already up to date at %s", shortRev(next))
	} else {
		changed, err := d.git.ChangedFiles(ctx, dir, prev, next)
		if err != nil {
			return nil, fmt.Errorf("diff revisions: %w", err)
		}
		res.ChangedFiles = changed
		d.stepf("Updated to %s, %d files changed", shortRev(next), len(changed))

		if trigger := d.rebuildTrigger(changed); trigger != "" {
			d.stepf("%s changed, rebuilding image without cache", trigger)
			if err := d.compose.Build(ctx, dir, true); err != nil {
				return nil, fmt.Errorf("rebuild image: %w", err)
			}
			res.ImageRebuilt = true
		} else {
			d.stepf("No rebuild trigger changed, keeping existing image")
		}
	}

	d.stepf("Applying containers")
	if err := d.compose.Up(ctx, dir); err != nil {
		return nil, fmt.Errorf("apply containers: %w", err)
	}

	d.stepf("Reloading %s", d.cfg.ProxyService)
	if err := d.proxy.Reload(ctx); err != nil {
		return nil, fmt.Errorf("reload proxy: %w", err)
	}

	res.Duration = time.Since(started)
	d.stepf("Deployment finished in %s", res.Duration.Round(time.Millisecond))
	return res, nil
}

// rebuildTrigger returns the first rebuild-trigger path present in the
// changed set, or "" when the image can be reused.
func (d *Deployer) rebuildTrigger(changed []string) string {
	triggers := d.rebuildPaths()
	for _, c := range changed {
		for _, t := range triggers {
			if filepath.ToSlash(c) == filepath.ToSlash(t) {
				return t
			}
		}
	}
	return ""
}

// rebuildPaths assembles the trigger set: the configured dependency manifest
// plus any extra paths from the repository's .deployctl.yml. The override
// file is read after the sync so the freshly pulled version applies.
func (d *Deployer) rebuildPaths() []string {
	paths := []string{d.cfg.ManifestPath}

	rc, err := config.LoadRepoConfig(d.cfg.AppDir)
	if err != nil {
		if !errors.Is(err, config.ErrRepoConfigNotFound) {
			d.logger.Warn("ignoring unreadable .deployctl.yml", "error", err)
		}
		return paths
	}
	if rc.Manifest != "" {
		paths[0] = rc.Manifest
	}
	return append(paths, rc.RebuildPaths...)
}

func (d *Deployer) stepf(format string, args ...any) {
	fmt.Fprintf(d.out, "%s %s\n", stepPrefix, fmt.Sprintf(format, args...))
}

func shortRev(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
