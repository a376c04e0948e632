package config

import (
	"embed-ui/core/logger"

	"go.uber.org/zap"
)

// DefaultTheme is the theme applied when none is configured.
const DefaultTheme = "reindeer"

// Config holds the settings of one embedded server.
//
// Port is the requested port. When it is 0 the server binds an ephemeral port
// and records it once through ResolvePort; EffectivePort and the URL helpers
// read the resolved value from then on.
type Config struct {
	// Port is the requested HTTP port, 0 picks a free one.
	Port int
	// ContextPath is the normalized deployment path, "" or starting with "/".
	ContextPath string
	// ContextRootDirectory is the directory served as static content. It must exist.
	ContextRootDirectory string
	// Wait blocks Start until the server is stopped.
	Wait bool
	// WidgetSet is the optional client widget set to load.
	WidgetSet string
	// ProductionMode disables the development aids (debug panel, API docs).
	ProductionMode bool
	// Theme is the name of the theme applied to the page.
	Theme string
	// DevelopmentHeader adds the shutdown header above wrapped components.
	DevelopmentHeader bool
	// OpenBrowser opens the default browser once the server is started.
	OpenBrowser bool
	// CustomBrowserURL overrides the page opened in the browser.
	CustomBrowserURL string
	// Log holds configuration for the logger.
	Log logger.Config

	resolvedPort int
}

// SetContextPath normalizes and stores the context path.
func (c *Config) SetContextPath(path string) {
	c.ContextPath = NormalizeContextPath(path)
}

// ResolvePort records the port actually bound. It can only be called once.
func (c *Config) ResolvePort(port int) error {
	if c.resolvedPort != 0 {
		return ErrPortResolved
	}
	if port <= 0 || port > maxPort {
		return NewInvalidArgument("port", "resolved port %d is out of range", port)
	}
	c.resolvedPort = port
	return nil
}

// IsPortResolved reports whether ResolvePort has been called.
func (c *Config) IsPortResolved() bool {
	return c.resolvedPort != 0
}

// EffectivePort returns the resolved port when known, the requested one otherwise.
func (c *Config) EffectivePort() int {
	if c.resolvedPort != 0 {
		return c.resolvedPort
	}
	return c.Port
}

// DeployURL returns the URL the application is reachable at.
func (c *Config) DeployURL() string {
	return BuildDeployURL(c.EffectivePort(), c.ContextPath)
}

// OpenURL returns the URL the browser should open.
func (c *Config) OpenURL() string {
	return BuildOpenURL(c.EffectivePort(), c.ContextPath, c.CustomBrowserURL)
}

// Clone returns an independent copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Fields returns the configuration as log fields.
func (c *Config) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("port", c.EffectivePort()),
		zap.String("context_path", c.ContextPath),
		zap.String("root_dir", c.ContextRootDirectory),
		zap.Bool("wait", c.Wait),
		zap.String("widget_set", c.WidgetSet),
		zap.Bool("production_mode", c.ProductionMode),
		zap.String("theme", c.Theme),
		zap.Bool("development_header", c.DevelopmentHeader),
		zap.Bool("open_browser", c.OpenBrowser),
		zap.String("custom_browser_url", c.CustomBrowserURL),
	}
}
