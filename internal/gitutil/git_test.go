package gitutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and plays back a canned response.
type fakeRunner struct {
	calls [][]string
	out   []byte
	err   error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	call := append([]string{dir, name}, args...)
	f.calls = append(f.calls, call)
	return f.out, f.err
}

func TestHeadRevision(t *testing.T) {
	runner := &fakeRunner{out: []byte("deadbeefcafe\n")}
	c := NewClient(runner, "origin", "main", nil)

	rev, err := c.HeadRevision(context.Background(), "/srv/app")

	require.NoError(t, err)
	assert.Equal(t, "deadbeefcafe", rev)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"/srv/app", "git", "rev-parse", "HEAD"}, runner.calls[0])
}

func TestSyncCommands(t *testing.T) {
	runner := &fakeRunner{}
	c := NewClient(runner, "origin", "main", nil)
	ctx := context.Background()

	require.NoError(t, c.Fetch(ctx, "/srv/app"))
	require.NoError(t, c.ResetHard(ctx, "/srv/app", "origin/main"))
	require.NoError(t, c.Pull(ctx, "/srv/app"))

	want := [][]string{
		{"/srv/app", "git", "fetch", "origin"},
		{"/srv/app", "git", "reset", "--hard", "origin/main"},
		{"/srv/app", "git", "pull", "origin", "main"},
	}
	assert.Equal(t, want, runner.calls)
}

func TestSyncCommands_PropagateFailure(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("exit status 128")}
	c := NewClient(runner, "origin", "main", nil)

	err := c.Fetch(context.Background(), "/srv/app")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "git fetch failed")
}

func TestChangedFiles(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	w, err := repo.Worktree()
	require.NoError(t, err)

	writeFile := func(name, content string) {
		t.Helper()
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		_, err := w.Add(name)
		require.NoError(t, err)
	}
	commit := func(msg string) string {
		t.Helper()
		h, err := w.Commit(msg, &git.CommitOptions{
			Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
		})
		require.NoError(t, err)
		return h.String()
	}

	writeFile("readme.md", "v1")
	writeFile("requirements.txt", "fastapi==0.1")
	first := commit("initial")

	writeFile("requirements.txt", "fastapi==0.2")
	writeFile("app.py", "print('hi')")
	_, err = w.Remove("readme.md")
	require.NoError(t, err)
	second := commit("update deps")

	c := NewClient(&fakeRunner{}, "origin", "main", nil)
	changed, err := c.ChangedFiles(context.Background(), dir, first, second)

	require.NoError(t, err)
	assert.Equal(t, []string{"app.py", "readme.md", "requirements.txt"}, changed)
}

func TestChangedFiles_SameRevision(t *testing.T) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	w, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("v1"), 0o644))
	_, err = w.Add("readme.md")
	require.NoError(t, err)
	h, err := w.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	c := NewClient(&fakeRunner{}, "origin", "main", nil)
	changed, err := c.ChangedFiles(context.Background(), dir, h.String(), h.String())

	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestChangedFiles_UnknownRevision(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	c := NewClient(&fakeRunner{}, "origin", "main", nil)
	_, err = c.ChangedFiles(context.Background(), dir, "0000000000000000000000000000000000000000", "0000000000000000000000000000000000000001")

	require.Error(t, err)
}
