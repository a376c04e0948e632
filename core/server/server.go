package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"embed-ui/core/browser"
	"embed-ui/core/config"
	"embed-ui/core/hook"
	"embed-ui/core/loader"
	"embed-ui/core/middleware/rayid"
	"embed-ui/core/middleware/requestlog"

	"github.com/creasty/defaults"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the lifecycle state of a Server.
type State int

const (
	StateCreated State = iota
	StateConfigured
	StateStarted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateConfigured:
		return "configured"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Deployment wires the content of one deployment mode into the server.
// Configure runs once, synchronously, during Start.
type Deployment interface {
	Configure(srv *Server, mgr *loader.Manager) error
}

// DeploymentFunc adapts a function to the Deployment interface.
type DeploymentFunc func(srv *Server, mgr *loader.Manager) error

// Configure calls f(srv, mgr).
func (f DeploymentFunc) Configure(srv *Server, mgr *loader.Manager) error {
	return f(srv, mgr)
}

// HookRegistry registers the exit hook of a started server.
type HookRegistry interface {
	Register(name string, fn func()) *hook.Handle
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithLauncher sets the browser launcher.
func WithLauncher(l browser.Launcher) Option {
	return func(s *Server) { s.launcher = l }
}

// WithHookRegistry sets the registry receiving the exit hook.
func WithHookRegistry(r HookRegistry) Option {
	return func(s *Server) { s.hooks = r }
}

// WithShutdownTimeout bounds the graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.settings.ShutdownTimeout = d }
}

// WithHost binds a single interface instead of all of them.
func WithHost(host string) Option {
	return func(s *Server) { s.settings.Host = host }
}

// Server is one embedded HTTP server bound to one listener. It is not
// reusable: once stopped it cannot be started again.
type Server struct {
	mu sync.Mutex

	cfg        *config.Config
	deployment Deployment
	settings   Settings
	logger     *zap.Logger
	launcher   browser.Launcher
	hooks      HookRegistry
	token      string

	state    State
	app      *fiber.App
	listener net.Listener
	hook     *hook.Handle
	serving  bool
	done     chan struct{}
}

// New creates a server for cfg serving the given deployment. The server owns
// cfg from now on.
func New(cfg *config.Config, deployment Deployment, opts ...Option) *Server {
	s := &Server{
		cfg:        cfg,
		deployment: deployment,
		logger:     zap.NewNop(),
		launcher:   browser.NewSystem(),
		hooks:      hook.Default,
		token:      uuid.NewString(),
		done:       make(chan struct{}),
	}
	if err := defaults.Set(&s.settings); err != nil {
		s.settings.ShutdownTimeout = 5 * time.Second
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start configures the server, binds its port and starts serving.
//
// A requested port of 0 is resolved to the bound port before anything reads
// the deploy URL. Once serving, the exit hook is registered, the browser is
// opened when configured, and Start blocks in Wait when the configuration
// asks for it. A failed Start leaves the server stopped.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.state != StateCreated {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}

	if err := s.configure(); err != nil {
		s.state = StateStopped
		s.mu.Unlock()
		return err
	}
	if err := s.bind(); err != nil {
		s.state = StateStopped
		s.mu.Unlock()
		return err
	}
	s.serve()

	s.state = StateStarted
	s.hook = s.hooks.Register("embed-ui "+s.cfg.DeployURL(), s.stopFromHook)
	cfg := s.cfg
	s.mu.Unlock()

	s.logger.Info("Embedded server started", zap.String("url", cfg.DeployURL()))

	if cfg.OpenBrowser {
		url := cfg.OpenURL()
		s.logger.Debug("Opening browser", zap.String("url", url))
		if err := s.launcher.Open(url); err != nil {
			return &ServerError{Op: "open browser", Port: cfg.EffectivePort(), Err: err}
		}
	}

	if cfg.Wait {
		s.Wait()
	}
	return nil
}

// configure must be called with s.mu held.
func (s *Server) configure() error {
	if s.deployment == nil {
		return &ServerError{Op: "configure", Port: s.cfg.Port, Err: errors.New("no deployment")}
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "embed-ui",
		DisableStartupMessage: true, // We will log our own startup message
	})

	// RayID must be first to trace everything
	s.app.Use(rayid.New())
	s.app.Use(requestlog.New(s.logger))

	mgr := loader.NewManager(s.logger)
	mgr.Register(&staticFeature{root: s.cfg.ContextRootDirectory})
	if err := s.deployment.Configure(s, mgr); err != nil {
		return &ServerError{Op: "configure", Port: s.cfg.Port, Err: err}
	}

	if err := mgr.LoadAll(s.app.Group(s.cfg.ContextPath)); err != nil {
		return &ServerError{Op: "configure", Port: s.cfg.Port, Err: err}
	}

	s.state = StateConfigured
	s.logger.Debug("Embedded server configured", s.cfg.Fields()...)
	return nil
}

// bind must be called with s.mu held.
func (s *Server) bind() error {
	addr := net.JoinHostPort(s.settings.Host, strconv.Itoa(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return &ServerError{Op: "bind", Port: s.cfg.Port, Err: err}
	}

	if s.cfg.Port == 0 {
		port := ln.Addr().(*net.TCPAddr).Port
		if err := s.cfg.ResolvePort(port); err != nil {
			_ = ln.Close()
			return &ServerError{Op: "bind", Port: port, Err: err}
		}
	}

	s.listener = ln
	return nil
}

// serve must be called with s.mu held.
func (s *Server) serve() {
	s.serving = true
	go func(app *fiber.App, ln net.Listener, done chan struct{}) {
		defer close(done)
		if err := app.Listener(ln); err != nil && !errors.Is(err, net.ErrClosed) {
			s.logger.Error("Embedded server stopped serving", zap.Error(err))
		}
	}(s.app, s.listener, s.done)
}

// Stop shuts the server down and removes its exit hook.
//
// It returns ErrNotStarted when the server is not running and a
// ShutdownWarning when the shutdown did not complete cleanly; in both cases
// the process-wide hook registry is left consistent.
func (s *Server) Stop() error {
	s.mu.Lock()
	if s.state != StateStarted {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.state = StateStopped
	app, ln, h := s.app, s.listener, s.hook
	s.hook = nil
	s.mu.Unlock()

	defer h.Deregister()

	start := time.Now()
	err := app.ShutdownWithTimeout(s.settings.ShutdownTimeout)
	if cerr := ln.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) && err == nil {
		err = cerr
	}

	select {
	case <-s.done:
	case <-time.After(s.settings.ShutdownTimeout):
		if err == nil {
			err = errors.New("listener did not stop in time")
		}
	}

	if err != nil {
		s.logger.Warn("Embedded server did not stop cleanly", zap.Error(err))
		return &ShutdownWarning{Err: err}
	}

	s.logger.Info("Embedded server stopped",
		zap.String("url", s.cfg.DeployURL()),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

func (s *Server) stopFromHook() {
	if err := s.Stop(); err != nil && !errors.Is(err, ErrNotStarted) {
		s.logger.Warn("Exit hook could not stop the embedded server", zap.Error(err))
	}
}

// Wait blocks until the server stopped serving. It returns immediately for a
// server that never served.
func (s *Server) Wait() {
	s.mu.Lock()
	serving := s.serving
	s.mu.Unlock()
	if !serving {
		return
	}
	<-s.done
}

// Done is closed once the server stopped serving.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// State returns the lifecycle state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Config returns the configuration owned by the server. The port is resolved
// once Start returned.
func (s *Server) Config() *config.Config {
	return s.cfg
}

// DeployURL returns the URL the content is served at.
func (s *Server) DeployURL() string {
	return s.cfg.DeployURL()
}

// Addr returns the bound address, nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Token returns the secret that pages served by this server send back with
// UI events.
func (s *Server) Token() string {
	return s.token
}

// Logger returns the server logger.
func (s *Server) Logger() *zap.Logger {
	return s.logger
}
