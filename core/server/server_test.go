package server_test

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"embed-ui/core/browser/mocks"
	"embed-ui/core/config"
	"embed-ui/core/hook"
	"embed-ui/core/loader"
	"embed-ui/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type helloFeature struct{}

func (helloFeature) Name() string    { return "hello" }
func (helloFeature) IsEnabled() bool { return true }
func (helloFeature) Load(app fiber.Router) error {
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("hello") })
	return nil
}

var hello = server.DeploymentFunc(func(_ *server.Server, mgr *loader.Manager) error {
	mgr.Register(helloFeature{})
	return nil
})

// capturingRegistry keeps the last registered hook so tests can fire it.
type capturingRegistry struct {
	*hook.Registry
	fn func()
}

func (r *capturingRegistry) Register(name string, fn func()) *hook.Handle {
	r.fn = fn
	return r.Registry.Register(name, fn)
}

func newConfig(t *testing.T, props map[string]string) *config.Config {
	t.Helper()
	base := map[string]string{
		"server.await":    "false",
		"context.rootDir": t.TempDir(),
	}
	for k, v := range props {
		base[k] = v
	}
	cfg, err := config.FromProperties(base)
	require.NoError(t, err)
	return cfg
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_StartStop(t *testing.T) {
	registry := hook.NewRegistry()
	cfg := newConfig(t, nil)
	srv := server.New(cfg, hello, server.WithHookRegistry(registry), server.WithLogger(zap.NewNop()))

	assert.Equal(t, server.StateCreated, srv.State())
	assert.Nil(t, srv.Addr())

	require.NoError(t, srv.Start())
	assert.Equal(t, server.StateStarted, srv.State())

	assert.Equal(t, 0, cfg.Port, "requested port is kept")
	assert.Positive(t, srv.Config().EffectivePort())
	assert.Equal(t, fmt.Sprintf("http://localhost:%d/", cfg.EffectivePort()), srv.DeployURL())
	assert.Equal(t, cfg.EffectivePort(), srv.Addr().(*net.TCPAddr).Port)
	assert.NotEmpty(t, srv.Token())
	assert.Equal(t, 1, registry.Len())

	status, body := get(t, srv.DeployURL())
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", body)

	require.NoError(t, srv.Stop())
	assert.Equal(t, server.StateStopped, srv.State())
	assert.Equal(t, 0, registry.Len())

	added, removed := registry.Stats()
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)

	select {
	case <-srv.Done():
	default:
		t.Fatal("server still serving after Stop")
	}

	assert.ErrorIs(t, srv.Stop(), server.ErrNotStarted)
	assert.ErrorIs(t, srv.Start(), server.ErrAlreadyStarted)

	added, removed = registry.Stats()
	assert.Equal(t, added, removed)
}

func TestServer_StopBeforeStart(t *testing.T) {
	registry := hook.NewRegistry()
	srv := server.New(newConfig(t, nil), hello, server.WithHookRegistry(registry))

	assert.ErrorIs(t, srv.Stop(), server.ErrNotStarted)
	assert.Equal(t, server.StateCreated, srv.State())

	added, removed := registry.Stats()
	assert.Zero(t, added)
	assert.Zero(t, removed)
}

func TestServer_ManyCycles(t *testing.T) {
	registry := hook.NewRegistry()

	for i := 0; i < 5; i++ {
		srv := server.New(newConfig(t, nil), hello, server.WithHookRegistry(registry))
		require.NoError(t, srv.Start())
		require.NoError(t, srv.Stop())
	}

	added, removed := registry.Stats()
	assert.Equal(t, 5, added)
	assert.Equal(t, 5, removed)
	assert.False(t, registry.Listening())
}

func TestServer_FixedPortIsReusableAfterStop(t *testing.T) {
	registry := hook.NewRegistry()
	first := server.New(newConfig(t, nil), hello, server.WithHookRegistry(registry))
	require.NoError(t, first.Start())
	port := first.Config().EffectivePort()
	require.NoError(t, first.Stop())

	second := server.New(newConfig(t, map[string]string{"server.port": fmt.Sprint(port)}), hello,
		server.WithHookRegistry(registry))
	require.NoError(t, second.Start())
	defer second.Stop()

	assert.Equal(t, port, second.Config().EffectivePort())
	assert.False(t, second.Config().IsPortResolved(), "fixed port needs no resolution")
}

func TestServer_BindFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer occupied.Close()
	port := occupied.Addr().(*net.TCPAddr).Port

	registry := hook.NewRegistry()
	srv := server.New(newConfig(t, map[string]string{"server.port": fmt.Sprint(port)}), hello,
		server.WithHookRegistry(registry))

	err = srv.Start()
	require.Error(t, err)

	var serr *server.ServerError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "bind", serr.Op)
	assert.Equal(t, port, serr.Port)

	assert.Equal(t, server.StateStopped, srv.State())
	assert.Equal(t, 0, registry.Len())
	assert.ErrorIs(t, srv.Stop(), server.ErrNotStarted)
	assert.ErrorIs(t, srv.Start(), server.ErrAlreadyStarted)
}

func TestServer_ConfigureFailure(t *testing.T) {
	boom := errors.New("boom")
	failing := server.DeploymentFunc(func(*server.Server, *loader.Manager) error { return boom })

	registry := hook.NewRegistry()
	srv := server.New(newConfig(t, nil), failing, server.WithHookRegistry(registry))

	err := srv.Start()
	assert.ErrorIs(t, err, boom)

	var serr *server.ServerError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "configure", serr.Op)
	assert.Equal(t, 0, registry.Len())
}

func TestServer_NilDeployment(t *testing.T) {
	srv := server.New(newConfig(t, nil), nil, server.WithHookRegistry(hook.NewRegistry()))
	assert.Error(t, srv.Start())
}

func TestServer_ContextPathAndStatic(t *testing.T) {
	cfg := newConfig(t, map[string]string{"context.path": "app"})
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ContextRootDirectory, "hello.txt"), []byte("static"), 0o644))

	srv := server.New(cfg, hello, server.WithHookRegistry(hook.NewRegistry()))
	require.NoError(t, srv.Start())
	defer srv.Stop()

	assert.Equal(t, fmt.Sprintf("http://localhost:%d/app", cfg.EffectivePort()), srv.DeployURL())

	status, body := get(t, srv.DeployURL())
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", body)

	status, body = get(t, srv.DeployURL()+"/static/hello.txt")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "static", body)

	status, _ = get(t, fmt.Sprintf("http://localhost:%d/", cfg.EffectivePort()))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestServer_OpensBrowser(t *testing.T) {
	launcher := new(mocks.Launcher)
	var opened string
	launcher.On("Open", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { opened = args.String(0) }).
		Return(nil)

	cfg := newConfig(t, map[string]string{"open.browser": "true", "browser.customUrl": "/static/"})
	srv := server.New(cfg, hello, server.WithLauncher(launcher), server.WithHookRegistry(hook.NewRegistry()))
	require.NoError(t, srv.Start())
	defer srv.Stop()

	launcher.AssertNumberOfCalls(t, "Open", 1)
	assert.Equal(t, fmt.Sprintf("http://localhost:%d/static/", cfg.EffectivePort()), opened)
}

func TestServer_DoesNotOpenBrowserByDefault(t *testing.T) {
	launcher := new(mocks.Launcher)
	srv := server.New(newConfig(t, nil), hello, server.WithLauncher(launcher), server.WithHookRegistry(hook.NewRegistry()))
	require.NoError(t, srv.Start())
	defer srv.Stop()

	launcher.AssertNotCalled(t, "Open", mock.Anything)
}

func TestServer_BrowserFailureKeepsServerRunning(t *testing.T) {
	launcher := new(mocks.Launcher)
	launcher.On("Open", mock.Anything).Return(errors.New("no display"))

	registry := hook.NewRegistry()
	srv := server.New(newConfig(t, map[string]string{"open.browser": "true"}), hello,
		server.WithLauncher(launcher), server.WithHookRegistry(registry))

	err := srv.Start()
	var serr *server.ServerError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "open browser", serr.Op)

	assert.Equal(t, server.StateStarted, srv.State())
	require.NoError(t, srv.Stop())
	assert.Equal(t, 0, registry.Len())
}

func TestServer_WaitBlocksUntilStopped(t *testing.T) {
	cfg := newConfig(t, map[string]string{"server.await": "true"})
	srv := server.New(cfg, hello, server.WithHookRegistry(hook.NewRegistry()))

	returned := make(chan error, 1)
	go func() { returned <- srv.Start() }()

	require.Eventually(t, func() bool { return srv.State() == server.StateStarted }, 5*time.Second, 10*time.Millisecond)

	select {
	case <-returned:
		t.Fatal("Start returned before the server was stopped")
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, srv.Stop())

	select {
	case err := <-returned:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Stop")
	}
}

func TestServer_WaitWithoutServing(t *testing.T) {
	srv := server.New(newConfig(t, nil), hello)

	done := make(chan struct{})
	go func() {
		srv.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked on a server that never served")
	}
}

func TestServer_ExitHookStopsServer(t *testing.T) {
	registry := &capturingRegistry{Registry: hook.NewRegistry()}
	srv := server.New(newConfig(t, nil), hello, server.WithHookRegistry(registry))
	require.NoError(t, srv.Start())
	require.NotNil(t, registry.fn)

	registry.fn()

	assert.Equal(t, server.StateStopped, srv.State())
	assert.Equal(t, 0, registry.Len())

	// A later explicit stop must not touch the registry again.
	assert.ErrorIs(t, srv.Stop(), server.ErrNotStarted)
	added, removed := registry.Stats()
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "created", server.StateCreated.String())
	assert.Equal(t, "configured", server.StateConfigured.String())
	assert.Equal(t, "started", server.StateStarted.String())
	assert.Equal(t, "stopped", server.StateStopped.String())
	assert.Equal(t, "State(9)", server.State(9).String())
}

func TestErrors(t *testing.T) {
	cause := errors.New("cause")

	serr := &server.ServerError{Op: "bind", Port: 80, Err: cause}
	assert.ErrorIs(t, serr, cause)
	assert.Equal(t, "server: bind failed on port 80: cause", serr.Error())

	warn := &server.ShutdownWarning{Err: cause}
	assert.ErrorIs(t, warn, cause)
	assert.Contains(t, warn.Error(), "cause")
}
