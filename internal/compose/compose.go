// Package compose drives docker compose for the application stack.
package compose

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/africonnect/deployctl/internal/execx"
)

// Client runs docker compose against a fixed compose file. It implements
// core.ComposeRunner.
type Client struct {
	runner      execx.Runner
	composeFile string
	logger      *slog.Logger
}

// NewClient returns a Client using the given compose definition file,
// resolved relative to the directory each operation runs in.
func NewClient(runner execx.Runner, composeFile string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		runner:      runner,
		composeFile: composeFile,
		logger:      logger,
	}
}

// Build rebuilds the application image. With noCache set the layer cache is
// bypassed so dependency changes are picked up from scratch.
func (c *Client) Build(ctx context.Context, dir string, noCache bool) error {
	args := []string{"compose", "-f", c.composeFile, "build"}
	if noCache {
		args = append(args, "--no-cache")
	}

	c.logger.InfoContext(ctx, "building application image", "no_cache", noCache)
	if _, err := c.runner.Run(ctx, dir, "docker", args...); err != nil {
		return fmt.Errorf("docker compose build failed: %w", err)
	}
	return nil
}

// Up reconciles the running containers with the compose definition in
// detached mode, creating or recreating services as needed. Containers for
// services removed from the definition are cleaned up as well.
func (c *Client) Up(ctx context.Context, dir string) error {
	c.logger.InfoContext(ctx, "starting containers")
	if _, err := c.runner.Run(ctx, dir, "docker", "compose", "-f", c.composeFile, "up", "-d", "--remove-orphans"); err != nil {
		return fmt.Errorf("docker compose up failed: %w", err)
	}
	return nil
}
