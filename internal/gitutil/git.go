// Package gitutil implements source synchronization for the deployment
// working tree. Mutating operations (fetch, reset, pull) shell out to the
// git CLI through execx so the exact invocations stay observable in tests;
// the revision diff is computed with go-git against the same tree.
package gitutil

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/africonnect/deployctl/internal/execx"
)

// Client handles interacting with the application's git working tree. It
// implements core.GitSyncer.
type Client struct {
	runner execx.Runner
	remote string
	branch string
	logger *slog.Logger
}

// NewClient returns a Client synchronizing against remote/branch.
func NewClient(runner execx.Runner, remote, branch string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		runner: runner,
		remote: remote,
		branch: branch,
		logger: logger,
	}
}

// HeadRevision returns the current HEAD revision of the working tree at dir.
func (c *Client) HeadRevision(ctx context.Context, dir string) (string, error) {
	out, err := c.runner.Run(ctx, dir, "git", "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Fetch downloads updates from the configured remote.
func (c *Client) Fetch(ctx context.Context, dir string) error {
	c.logger.InfoContext(ctx, "fetching latest changes", "remote", c.remote)
	if _, err := c.runner.Run(ctx, dir, "git", "fetch", c.remote); err != nil {
		return fmt.Errorf("git fetch failed: %w", err)
	}
	return nil
}

// ResetHard forces the working tree to match ref exactly, discarding any
// local divergence.
func (c *Client) ResetHard(ctx context.Context, dir, ref string) error {
	c.logger.InfoContext(ctx, "resetting working tree", "ref", ref)
	if _, err := c.runner.Run(ctx, dir, "git", "reset", "--hard", ref); err != nil {
		return fmt.Errorf("git reset failed: %w", err)
	}
	return nil
}

// Pull advances the local branch pointer to the fetched remote state. After
// a hard reset to the remote ref this is normally a no-op; it is kept so the
// branch pointer is current even when the reset target was already local.
func (c *Client) Pull(ctx context.Context, dir string) error {
	if _, err := c.runner.Run(ctx, dir, "git", "pull", c.remote, c.branch); err != nil {
		return fmt.Errorf("git pull failed: %w", err)
	}
	return nil
}

// ChangedFiles returns the sorted set of paths that differ between two
// revisions of the repository at dir.
func (c *Client) ChangedFiles(ctx context.Context, dir, oldRev, newRev string) ([]string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	oldTree, err := treeAt(repo, oldRev)
	if err != nil {
		return nil, err
	}
	newTree, err := treeAt(repo, newRev)
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(ctx, oldTree, newTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to diff trees between %s and %s: %w", oldRev, newRev, err)
	}

	seen := make(map[string]struct{}, len(changes))
	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			c.logger.Error("failed to get action for change, skipping", "error", err)
			continue
		}

		var name string
		switch action {
		case merkletrie.Insert, merkletrie.Modify:
			name = change.To.Name
		case merkletrie.Delete:
			name = change.From.Name
		}
		if name != "" {
			seen[name] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

func treeAt(repo *git.Repository, rev string) (*object.Tree, error) {
	commit, err := repo.CommitObject(plumbing.NewHash(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to get commit object for %s: %w", rev, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree for commit %s: %w", rev, err)
	}
	return tree, nil
}
