// Package execx provides the external command executor the deployment
// pipeline runs git, docker and systemctl through. Abstracting the process
// invocation behind an interface keeps the call sequences testable without a
// real source tree, container engine or service manager present.
package execx

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Runner executes a named external process with arguments in a working
// directory and returns its combined output. A non-zero exit status is
// reported as an error wrapping the underlying exec error.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

type osRunner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner backed by os/exec.
func NewRunner(logger *slog.Logger) Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &osRunner{logger: logger}
}

func (r *osRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	r.logger.DebugContext(ctx, "running command", "name", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("%s %s: %s: %w",
			name, strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return out, nil
}
