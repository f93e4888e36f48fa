package deployer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/africonnect/deployctl/internal/config"
	"github.com/africonnect/deployctl/internal/core"
	"github.com/africonnect/deployctl/internal/core/mocks"
)

func testConfig(appDir string) *config.Config {
	return &config.Config{
		AppDir:       appDir,
		Git:          config.GitConfig{Remote: "origin", Branch: "main"},
		ManifestPath: "requirements.txt",
		ComposeFile:  "docker-compose.yml",
		ProxyService: "nginx",
	}
}

func newTestDeployer(t *testing.T, cfg *config.Config) (*Deployer, *mocks.MockGitSyncer, *mocks.MockComposeRunner, *mocks.MockProxyReloader, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	git := mocks.NewMockGitSyncer(ctrl)
	stack := mocks.NewMockComposeRunner(ctrl)
	edge := mocks.NewMockProxyReloader(ctrl)

	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return New(cfg, git, stack, edge, out, logger), git, stack, edge, out
}

func TestRun_MissingAppDir(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	d, _, _, _, _ := newTestDeployer(t, cfg)

	// No expectations are registered: a missing directory must abort the run
	// before any collaborator is invoked.
	res, err := d.Run(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrAppDirNotFound))
	assert.Nil(t, res)
}

func TestRun_NonManifestChange_SkipsRebuild(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	d, git, stack, edge, out := newTestDeployer(t, cfg)

	// Scenario A: only readme.md changed. The baseline revision is captured
	// strictly before the fetch, the new one strictly after the pull, and
	// no build happens before the apply.
	gomock.InOrder(
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("aaaa1111aaaa1111", nil),
		git.EXPECT().Fetch(gomock.Any(), dir).Return(nil),
		git.EXPECT().ResetHard(gomock.Any(), dir, "origin/main").Return(nil),
		git.EXPECT().Pull(gomock.Any(), dir).Return(nil),
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("bbbb2222bbbb2222", nil),
		git.EXPECT().ChangedFiles(gomock.Any(), dir, "aaaa1111aaaa1111", "bbbb2222bbbb2222").Return([]string{"readme.md"}, nil),
		stack.EXPECT().Up(gomock.Any(), dir).Return(nil),
		edge.EXPECT().Reload(gomock.Any()).Return(nil),
	)

	res, err := d.Run(context.Background(), &core.DeployRequest{Trigger: core.TriggerManual})

	require.NoError(t, err)
	assert.Equal(t, "aaaa1111aaaa1111", res.PreviousRevision)
	assert.Equal(t, "bbbb2222bbbb2222", res.NewRevision)
	assert.False(t, res.ImageRebuilt)
	assert.Equal(t, []string{"readme.md"}, res.ChangedFiles)
	assert.Contains(t, out.String(), "Deployment finished")
}

func TestRun_ManifestChange_RebuildsWithoutCache(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	d, git, stack, edge, _ := newTestDeployer(t, cfg)

	// Scenario B: requirements.txt changed, so the image is rebuilt exactly
	// once with the cache bypassed, before the containers are applied.
	gomock.InOrder(
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("aaaa1111aaaa1111", nil),
		git.EXPECT().Fetch(gomock.Any(), dir).Return(nil),
		git.EXPECT().ResetHard(gomock.Any(), dir, "origin/main").Return(nil),
		git.EXPECT().Pull(gomock.Any(), dir).Return(nil),
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("bbbb2222bbbb2222", nil),
		git.EXPECT().ChangedFiles(gomock.Any(), dir, "aaaa1111aaaa1111", "bbbb2222bbbb2222").Return([]string{"app.py", "requirements.txt"}, nil),
		stack.EXPECT().Build(gomock.Any(), dir, true).Return(nil),
		stack.EXPECT().Up(gomock.Any(), dir).Return(nil),
		edge.EXPECT().Reload(gomock.Any()).Return(nil),
	)

	res, err := d.Run(context.Background(), &core.DeployRequest{Trigger: core.TriggerWebhook})

	require.NoError(t, err)
	assert.True(t, res.ImageRebuilt)
	assert.Equal(t, core.TriggerWebhook, res.Trigger)
}

func TestRun_UpToDate_SkipsDiff(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	d, git, stack, edge, out := newTestDeployer(t, cfg)

	gomock.InOrder(
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("cccc3333cccc3333", nil),
		git.EXPECT().Fetch(gomock.Any(), dir).Return(nil),
		git.EXPECT().ResetHard(gomock.Any(), dir, "origin/main").Return(nil),
		git.EXPECT().Pull(gomock.Any(), dir).Return(nil),
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("cccc3333cccc3333", nil),
		stack.EXPECT().Up(gomock.Any(), dir).Return(nil),
		edge.EXPECT().Reload(gomock.Any()).Return(nil),
	)

	res, err := d.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.True(t, res.UpToDate())
	assert.False(t, res.ImageRebuilt)
	assert.Empty(t, res.ChangedFiles)
	assert.Contains(t, out.String(), "already up to date")
}

func TestRun_FetchFailure_AbortsRun(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	d, git, _, _, _ := newTestDeployer(t, cfg)

	// Fail-fast: nothing after the fetch may run, which the absence of
	// further expectations enforces.
	gomock.InOrder(
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("aaaa1111aaaa1111", nil),
		git.EXPECT().Fetch(gomock.Any(), dir).Return(fmt.Errorf("remote unreachable")),
	)

	res, err := d.Run(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch updates")
	assert.Nil(t, res)
}

func TestRun_UpFailure_SkipsReload(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	d, git, stack, _, _ := newTestDeployer(t, cfg)

	gomock.InOrder(
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("aaaa1111aaaa1111", nil),
		git.EXPECT().Fetch(gomock.Any(), dir).Return(nil),
		git.EXPECT().ResetHard(gomock.Any(), dir, "origin/main").Return(nil),
		git.EXPECT().Pull(gomock.Any(), dir).Return(nil),
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("bbbb2222bbbb2222", nil),
		git.EXPECT().ChangedFiles(gomock.Any(), dir, "aaaa1111aaaa1111", "bbbb2222bbbb2222").Return([]string{"readme.md"}, nil),
		stack.EXPECT().Up(gomock.Any(), dir).Return(fmt.Errorf("container engine down")),
	)

	_, err := d.Run(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply containers")
}

func TestRun_RepoConfigOverridesRebuildTriggers(t *testing.T) {
	dir := t.TempDir()
	repoCfg := "manifest: pyproject.toml\nrebuild_paths:\n  - Dockerfile\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".deployctl.yml"), []byte(repoCfg), 0o644))

	cfg := testConfig(dir)
	d, git, stack, edge, _ := newTestDeployer(t, cfg)

	// requirements.txt no longer triggers a rebuild, the Dockerfile does.
	gomock.InOrder(
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("aaaa1111aaaa1111", nil),
		git.EXPECT().Fetch(gomock.Any(), dir).Return(nil),
		git.EXPECT().ResetHard(gomock.Any(), dir, "origin/main").Return(nil),
		git.EXPECT().Pull(gomock.Any(), dir).Return(nil),
		git.EXPECT().HeadRevision(gomock.Any(), dir).Return("bbbb2222bbbb2222", nil),
		git.EXPECT().ChangedFiles(gomock.Any(), dir, "aaaa1111aaaa1111", "bbbb2222bbbb2222").Return([]string{"Dockerfile", "requirements.txt"}, nil),
		stack.EXPECT().Build(gomock.Any(), dir, true).Return(nil),
		stack.EXPECT().Up(gomock.Any(), dir).Return(nil),
		edge.EXPECT().Reload(gomock.Any()).Return(nil),
	)

	res, err := d.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.True(t, res.ImageRebuilt)
}
