package cmd

import (
	"fmt"
	"os"

	"embed-ui/core/config"
	"embed-ui/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	envFile    string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "embed-ui",
	Short: "Embedded UI server",
	Long: `embed-ui runs a web UI inside a local HTTP server.
It serves a component or a static page from a content root and can open the browser on it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Must run before any configuration is read so EMBED_* overrides apply
		return config.LoadEnvFile(envFile)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// loadConfig reads --config when given, the default property file otherwise.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "property file (default "+config.DefaultLocation+" when present)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the configuration")
}
