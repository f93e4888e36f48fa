package core

import "context"

//go:generate mockgen -source=services.go -destination=mocks/core_mocks.go -package=mocks

// GitSyncer performs source synchronization against the deployment remote.
// All operations act on the working tree at dir.
type GitSyncer interface {
	// HeadRevision returns the revision the working tree currently points at.
	HeadRevision(ctx context.Context, dir string) (string, error)

	// Fetch downloads updates from the configured remote.
	Fetch(ctx context.Context, dir string) error

	// ResetHard forces the working tree to match ref exactly, discarding any
	// local divergence.
	ResetHard(ctx context.Context, dir, ref string) error

	// Pull advances the local branch pointer to the fetched remote state.
	Pull(ctx context.Context, dir string) error

	// ChangedFiles returns the paths that differ between two revisions.
	ChangedFiles(ctx context.Context, dir, oldRev, newRev string) ([]string, error)
}

// ComposeRunner drives the container orchestration tool for the application
// stack rooted at dir.
type ComposeRunner interface {
	// Build rebuilds the application image. With noCache set the build
	// bypasses the layer cache entirely.
	Build(ctx context.Context, dir string, noCache bool) error

	// Up reconciles the running containers with the compose definition,
	// creating or recreating services as needed, in detached mode.
	Up(ctx context.Context, dir string) error
}

// ProxyReloader signals the edge web server to re-read its configuration
// without dropping connections.
type ProxyReloader interface {
	Reload(ctx context.Context) error
}

// Deployer runs the deployment procedure end to end. Run is fail-fast: the
// first failing step aborts the run and no compensation is attempted.
type Deployer interface {
	Run(ctx context.Context, req *DeployRequest) (*Result, error)
}

// DeployDispatcher queues deployment requests for serialized background
// execution. Dispatch returns an error when the queue is full, providing
// backpressure to the caller.
type DeployDispatcher interface {
	Dispatch(ctx context.Context, req *DeployRequest) error
	Stop()
}
