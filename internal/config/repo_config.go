package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/africonnect/deployctl/internal/core"
)

var (
	ErrRepoConfigNotFound = errors.New("repo config file not found")
	ErrRepoConfigParsing  = errors.New("repo config parsing failed")
)

// LoadRepoConfig loads and parses the optional .deployctl.yml from the
// application repository. A missing file yields the defaults together with
// ErrRepoConfigNotFound so callers can tell the two cases apart.
func LoadRepoConfig(appDir string) (*core.RepoConfig, error) {
	configPath := filepath.Join(appDir, ".deployctl.yml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.DefaultRepoConfig(), ErrRepoConfigNotFound
		}
		return nil, fmt.Errorf("failed to read .deployctl.yml: %w", err)
	}

	cfg := core.DefaultRepoConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	// Strict decoding: an unsupported or misspelled key is an error, not a
	// silently dropped override.
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrRepoConfigParsing, err)
	}
	return cfg, nil
}
