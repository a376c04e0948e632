package builder

import (
	"path/filepath"
	"strings"

	"embed-ui/core/browser"
	"embed-ui/core/config"
	"embed-ui/core/logger"
	"embed-ui/core/server"

	"go.uber.org/zap"
)

// Builder is the configuration surface shared by every deployment mode.
//
// Mutators validate eagerly. The first invalid argument is recorded and turns
// every later mutator into a no-op; Err reports it and Build returns it.
type Builder interface {
	// WithConfigPath replaces the configuration with the given property file.
	WithConfigPath(path string) Builder
	// WithConfigProperties replaces the configuration with the given properties.
	WithConfigProperties(props map[string]string) Builder
	// WithHTTPPort sets the port, 0 picks a free one.
	WithHTTPPort(port int) Builder
	WithContextPath(path string) Builder
	// WithContextRootDirectory sets the static content directory. Relative
	// paths resolve against the working directory.
	WithContextRootDirectory(dir string) Builder
	WithWidgetSet(widgetSet string) Builder
	WithProductionMode(enabled bool) Builder
	WithTheme(theme string) Builder
	// Wait makes Start block until the server is stopped.
	Wait(wait bool) Builder
	OpenBrowser(open bool) Builder
	// OpenBrowserAt opens the browser at a custom location once started.
	OpenBrowserAt(url string) Builder
	WithLogger(l *zap.Logger) Builder
	WithLauncher(l browser.Launcher) Builder
	WithHookRegistry(r server.HookRegistry) Builder

	// Err returns the first recorded error.
	Err() error
	// Config returns a copy of the current configuration, nil after a failed load.
	Config() *config.Config
	// Build creates a server without starting it.
	Build() (*server.Server, error)
	// Start builds and starts a server.
	Start() (*server.Server, error)
}

// Base implements the shared part of Builder. Concrete builders embed it,
// pass themselves to NewBase and implement Build.
type Base struct {
	self Builder
	cfg  *config.Config
	err  error

	logger   *zap.Logger
	launcher browser.Launcher
	hooks    server.HookRegistry
}

// NewBase creates the shared state, loading the default property file when
// present.
func NewBase(self Builder) *Base {
	b := &Base{self: self}
	cfg, err := config.Load()
	if err != nil {
		b.err = err
		return b
	}
	b.cfg = cfg
	return b
}

// Fail records err unless an error is already recorded.
func (b *Base) Fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Update applies fn to the configuration unless an error is recorded.
func (b *Base) Update(fn func(cfg *config.Config)) {
	if b.err != nil {
		return
	}
	fn(b.cfg)
}

func (b *Base) WithConfigPath(path string) Builder {
	if b.err != nil {
		return b.self
	}
	if strings.TrimSpace(path) == "" {
		b.Fail(config.NewInvalidArgument("configPath", "must not be blank"))
		return b.self
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		b.Fail(err)
		return b.self
	}
	b.cfg = cfg
	return b.self
}

func (b *Base) WithConfigProperties(props map[string]string) Builder {
	if b.err != nil {
		return b.self
	}
	if props == nil {
		b.Fail(config.NewInvalidArgument("properties", "must not be nil"))
		return b.self
	}
	cfg, err := config.FromProperties(props)
	if err != nil {
		b.Fail(err)
		return b.self
	}
	b.cfg = cfg
	return b.self
}

func (b *Base) WithHTTPPort(port int) Builder {
	if port < 0 || port > 65535 {
		b.Fail(config.NewInvalidArgument("port", "%d is out of range", port))
		return b.self
	}
	b.Update(func(cfg *config.Config) { cfg.Port = port })
	return b.self
}

func (b *Base) WithContextPath(path string) Builder {
	b.Update(func(cfg *config.Config) { cfg.SetContextPath(path) })
	return b.self
}

func (b *Base) WithContextRootDirectory(dir string) Builder {
	if b.err != nil {
		return b.self
	}
	if strings.TrimSpace(dir) == "" {
		b.Fail(config.NewInvalidArgument("contextRootDirectory", "must not be blank"))
		return b.self
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		b.Fail(config.NewInvalidArgument("contextRootDirectory", "%v", err))
		return b.self
	}
	if err := config.CheckDirectory(abs); err != nil {
		b.Fail(config.NewInvalidArgument("contextRootDirectory", "%v", err))
		return b.self
	}
	b.Update(func(cfg *config.Config) { cfg.ContextRootDirectory = abs })
	return b.self
}

func (b *Base) WithWidgetSet(widgetSet string) Builder {
	b.Update(func(cfg *config.Config) { cfg.WidgetSet = widgetSet })
	return b.self
}

func (b *Base) WithProductionMode(enabled bool) Builder {
	b.Update(func(cfg *config.Config) { cfg.ProductionMode = enabled })
	return b.self
}

func (b *Base) WithTheme(theme string) Builder {
	if strings.TrimSpace(theme) == "" {
		b.Fail(config.NewInvalidArgument("theme", "must not be blank"))
		return b.self
	}
	b.Update(func(cfg *config.Config) { cfg.Theme = theme })
	return b.self
}

func (b *Base) Wait(wait bool) Builder {
	b.Update(func(cfg *config.Config) { cfg.Wait = wait })
	return b.self
}

func (b *Base) OpenBrowser(open bool) Builder {
	b.Update(func(cfg *config.Config) { cfg.OpenBrowser = open })
	return b.self
}

func (b *Base) OpenBrowserAt(url string) Builder {
	b.Update(func(cfg *config.Config) {
		cfg.OpenBrowser = true
		cfg.CustomBrowserURL = url
	})
	return b.self
}

func (b *Base) WithLogger(l *zap.Logger) Builder {
	if l == nil {
		b.Fail(config.NewInvalidArgument("logger", "must not be nil"))
		return b.self
	}
	if b.err == nil {
		b.logger = l
	}
	return b.self
}

func (b *Base) WithLauncher(l browser.Launcher) Builder {
	if l == nil {
		b.Fail(config.NewInvalidArgument("launcher", "must not be nil"))
		return b.self
	}
	if b.err == nil {
		b.launcher = l
	}
	return b.self
}

func (b *Base) WithHookRegistry(r server.HookRegistry) Builder {
	if r == nil {
		b.Fail(config.NewInvalidArgument("hookRegistry", "must not be nil"))
		return b.self
	}
	if b.err == nil {
		b.hooks = r
	}
	return b.self
}

func (b *Base) Err() error {
	return b.err
}

func (b *Base) Config() *config.Config {
	if b.cfg == nil {
		return nil
	}
	return b.cfg.Clone()
}

// Snapshot returns an independent configuration for a new server together
// with the server options, or the recorded error.
func (b *Base) Snapshot() (*config.Config, []server.Option, error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	cfg := b.cfg.Clone()

	l := b.logger
	if l == nil {
		built, err := logger.New(&cfg.Log)
		if err != nil {
			return nil, nil, &config.ConfigurationError{Key: "log.level", Message: "cannot build logger", Err: err}
		}
		l = built
	}

	opts := []server.Option{server.WithLogger(l)}
	if b.launcher != nil {
		opts = append(opts, server.WithLauncher(b.launcher))
	}
	if b.hooks != nil {
		opts = append(opts, server.WithHookRegistry(b.hooks))
	}
	return cfg, opts, nil
}

// Start builds a server and starts it. The server is returned with the error
// only when it is running anyway, i.e. after a failed browser launch, so the
// caller can still stop it. Configure and bind failures return a nil server.
func (b *Base) Start() (*server.Server, error) {
	srv, err := b.self.Build()
	if err != nil {
		return nil, err
	}
	if err := srv.Start(); err != nil {
		if srv.State() != server.StateStarted {
			return nil, err
		}
		return srv, err
	}
	return srv, nil
}
