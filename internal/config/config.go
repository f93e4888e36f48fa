// Package config loads the deployctl configuration from environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/africonnect/deployctl/internal/logger"
)

// GitConfig names the remote and branch the working tree is synchronized to.
type GitConfig struct {
	Remote string
	Branch string
}

// ServerConfig holds the webhook server settings used by `deployctl serve`.
type ServerConfig struct {
	Port          string
	WebhookSecret string
}

// Config holds the application's configuration values.
type Config struct {
	// AppDir is the application directory containing the git working tree
	// and the compose definition. It is the only required setting.
	AppDir string

	Git          GitConfig
	ManifestPath string
	ComposeFile  string
	ProxyService string
	JournalPath  string
	Server       ServerConfig
	Log          logger.Config
}

// RemoteRef returns the remote-tracking ref the working tree is reset to,
// e.g. "origin/main".
func (c *Config) RemoteRef() string {
	return c.Git.Remote + "/" + c.Git.Branch
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates required fields.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("GIT_REMOTE", "origin")
	viper.SetDefault("GIT_BRANCH", "main")
	viper.SetDefault("MANIFEST_PATH", "requirements.txt")
	viper.SetDefault("COMPOSE_FILE", "docker-compose.yml")
	viper.SetDefault("PROXY_SERVICE", "nginx")
	viper.SetDefault("JOURNAL_PATH", "/var/lib/deployctl/history.yml")
	viper.SetDefault("SERVER_PORT", "8484")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine; anything else (unreadable, malformed) is
		// worth surfacing but not fatal since env vars still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			slog.Warn("failed to read .env file", "error", err)
		}
	}

	if viper.GetString("APP_DIR") == "" {
		return nil, fmt.Errorf("APP_DIR must be set")
	}

	return &Config{
		AppDir: viper.GetString("APP_DIR"),
		Git: GitConfig{
			Remote: viper.GetString("GIT_REMOTE"),
			Branch: viper.GetString("GIT_BRANCH"),
		},
		ManifestPath: viper.GetString("MANIFEST_PATH"),
		ComposeFile:  viper.GetString("COMPOSE_FILE"),
		ProxyService: viper.GetString("PROXY_SERVICE"),
		JournalPath:  viper.GetString("JOURNAL_PATH"),
		Server: ServerConfig{
			Port:          viper.GetString("SERVER_PORT"),
			WebhookSecret: viper.GetString("GITHUB_WEBHOOK_SECRET"),
		},
		Log: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}, nil
}
