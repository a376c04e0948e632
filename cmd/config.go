package cmd

import (
	"fmt"
	"io"
	"strconv"

	"embed-ui/core/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  `Loads the configuration the way start does and prints every property with the deploy URL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		printConfig(cmd.OutOrStdout(), cfg)
		return nil
	},
}

type property struct {
	key   string
	value string
}

func properties(cfg *config.Config) []property {
	return []property{
		{"server.port", strconv.Itoa(cfg.Port)},
		{"server.await", strconv.FormatBool(cfg.Wait)},
		{"context.path", cfg.ContextPath},
		{"context.rootDir", cfg.ContextRootDirectory},
		{"vaadin.widgetSet", cfg.WidgetSet},
		{"vaadin.productionMode", strconv.FormatBool(cfg.ProductionMode)},
		{"vaadin.theme", cfg.Theme},
		{"development.header", strconv.FormatBool(cfg.DevelopmentHeader)},
		{"open.browser", strconv.FormatBool(cfg.OpenBrowser)},
		{"browser.customUrl", cfg.CustomBrowserURL},
		{"log.level", cfg.Log.Level},
		{"log.format", cfg.Log.Format},
	}
}

func printConfig(w io.Writer, cfg *config.Config) {
	keyColor := color.New(color.FgCyan)
	unset := color.New(color.Faint)

	for _, p := range properties(cfg) {
		keyColor.Fprintf(w, "%-22s ", p.key)
		if p.value == "" {
			unset.Fprintln(w, "(unset)")
			continue
		}
		fmt.Fprintln(w, p.value)
	}
	fmt.Fprintln(w)
	color.New(color.Bold).Fprint(w, "deploy url: ")
	color.New(color.FgGreen).Fprintln(w, cfg.DeployURL())
}

func init() {
	RootCmd.AddCommand(configCmd)
}
