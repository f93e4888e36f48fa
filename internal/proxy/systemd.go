// Package proxy reloads the front-facing web server through the host
// service manager.
package proxy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/africonnect/deployctl/internal/execx"
)

// SystemdReloader reloads a systemd-managed service, e.g. nginx. It
// implements core.ProxyReloader.
type SystemdReloader struct {
	runner  execx.Runner
	service string
	logger  *slog.Logger
}

// NewSystemdReloader returns a reloader for the named systemd service.
func NewSystemdReloader(runner execx.Runner, service string, logger *slog.Logger) *SystemdReloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemdReloader{
		runner:  runner,
		service: service,
		logger:  logger,
	}
}

// Reload asks the service manager to reload the service configuration
// without dropping connections.
func (r *SystemdReloader) Reload(ctx context.Context) error {
	r.logger.InfoContext(ctx, "reloading edge proxy", "service", r.service)
	if _, err := r.runner.Run(ctx, "", "systemctl", "reload", r.service); err != nil {
		return fmt.Errorf("systemctl reload %s failed: %w", r.service, err)
	}
	return nil
}
