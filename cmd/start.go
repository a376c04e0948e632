package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"embed-ui/core/builder"
	"embed-ui/core/logger"
	"embed-ui/core/server"
	"embed-ui/core/ui"
	"embed-ui/feature/component"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// IndexFile is served as the page content when present in the content root.
const IndexFile = "index.html"

// @title embed-ui
// @version 1.0
// @description Click dispatch endpoints of an embedded UI server.
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the embedded UI server",
	Long: `Serves index.html from the content root, or a welcome page when there is none.
Flags override the property file and the EMBED_* environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		root := ui.NewVerticalLayout()

		b := component.New(root)
		if configPath != "" {
			b.WithConfigPath(configPath)
		}
		if flags.Changed("dev-header") {
			devHeader, _ := flags.GetBool("dev-header")
			b.WithDevelopmentHeader(devHeader)
		}
		applyFlags(b, cmd)
		if err := b.Err(); err != nil {
			return err
		}

		cfg := b.Config()

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		b.WithLogger(logg)

		page, err := indexPage(cfg.ContextRootDirectory)
		if err != nil {
			return err
		}
		root.AddComponent(page)

		srv, err := b.Start()
		if err != nil {
			if srv == nil || srv.State() != server.StateStarted {
				return err
			}
			// Browser launch failed, the server keeps running
			logg.Warn("Server started with errors", zap.Error(err))
			<-srv.Done()
			return nil
		}

		if !cfg.Wait {
			logg.Info("Serving until interrupted", zap.String("url", srv.DeployURL()))
			<-srv.Done()
		}
		return nil
	},
}

func applyFlags(b builder.Builder, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		port, _ := flags.GetInt("port")
		b.WithHTTPPort(port)
	}
	if flags.Changed("context-path") {
		path, _ := flags.GetString("context-path")
		b.WithContextPath(path)
	}
	if flags.Changed("root-dir") {
		dir, _ := flags.GetString("root-dir")
		b.WithContextRootDirectory(dir)
	}
	if flags.Changed("open") {
		open, _ := flags.GetBool("open")
		b.OpenBrowser(open)
	}
	if flags.Changed("no-wait") {
		noWait, _ := flags.GetBool("no-wait")
		b.Wait(!noWait)
	}
	if flags.Changed("production") {
		production, _ := flags.GetBool("production")
		b.WithProductionMode(production)
	}
}

// indexPage returns the content of dir/index.html, or a welcome label when
// the file does not exist.
func indexPage(dir string) (ui.Component, error) {
	data, err := os.ReadFile(filepath.Join(dir, IndexFile))
	if errors.Is(err, fs.ErrNotExist) {
		return ui.NewLabel("embed-ui is running. Add " + IndexFile + " to " + dir + " to replace this page."), nil
	}
	if err != nil {
		return nil, err
	}
	return &ui.HTML{Content: string(data)}, nil
}

func init() {
	RootCmd.AddCommand(startCmd)

	startCmd.Flags().Int("port", 0, "HTTP port, 0 picks a free one")
	startCmd.Flags().String("context-path", "", "deployment path")
	startCmd.Flags().String("root-dir", "", "content root directory")
	startCmd.Flags().Bool("open", false, "open the browser once started")
	startCmd.Flags().Bool("no-wait", false, "return from start and wait for the server in the command")
	startCmd.Flags().Bool("dev-header", false, "show the shutdown header")
	startCmd.Flags().Bool("production", false, "enable production mode")
}
