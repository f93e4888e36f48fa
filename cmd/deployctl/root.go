package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var appDir string

var rootCmd = &cobra.Command{
	Use:   "deployctl",
	Short: "deployctl deploys a compose application from its git repository.",
	Long: `deployctl synchronizes an application directory with its git remote,
rebuilds the container image when the dependency manifest changed, brings the
compose stack up and reloads the edge proxy.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&appDir, "app-dir", "d", "", "application directory containing the git working tree and compose file")

	if err := viper.BindPFlag("APP_DIR", rootCmd.PersistentFlags().Lookup("app-dir")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
