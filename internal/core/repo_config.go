package core

// RepoConfig holds per-repository deployment overrides, read from an
// optional .deployctl.yml at the root of the application repository. Values
// left empty fall back to the global configuration.
type RepoConfig struct {
	// Manifest overrides the dependency manifest path whose modification
	// triggers an image rebuild.
	Manifest string `yaml:"manifest"`

	// RebuildPaths lists additional paths that trigger a rebuild when they
	// appear in the changed-file set, e.g. a Dockerfile.
	RebuildPaths []string `yaml:"rebuild_paths"`
}

// DefaultRepoConfig returns an empty override set.
func DefaultRepoConfig() *RepoConfig {
	return &RepoConfig{}
}
