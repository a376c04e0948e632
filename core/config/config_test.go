package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"embed-ui/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeContextPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Blank", "   ", ""},
		{"Root", "/", ""},
		{"NoSlash", "foo", "/foo"},
		{"WithSlash", "/foo", "/foo"},
		{"Nested", "foo/bar", "/foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.NormalizeContextPath(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, config.NormalizeContextPath(got), "normalization is idempotent")
		})
	}
}

func TestBuildDeployURL(t *testing.T) {
	tests := []struct {
		name string
		port int
		path string
		want string
	}{
		{"AutoPortRoot", 0, "", "http://localhost:[auto]/"},
		{"FixedPortRoot", 8080, "", "http://localhost:8080/"},
		{"FixedPortContext", 12345, "/foo", "http://localhost:12345/foo"},
		{"AutoPortContext", 0, "/app", "http://localhost:[auto]/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.BuildDeployURL(tt.port, tt.path))
		})
	}
}

func TestBuildOpenURL(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		context string
		custom  string
		want    string
	}{
		{"NoCustom", 18002, "", "", "http://localhost:18002/"},
		{"AbsolutePath", 18002, "", "/admin", "http://localhost:18002/admin"},
		{"AbsolutePathIgnoresContext", 18002, "/app", "/admin", "http://localhost:18002/admin"},
		{"FullURL", 18002, "", "http://example.com/", "http://example.com/"},
		{"FullHTTPSURL", 18002, "/app", "https://example.com/x", "https://example.com/x"},
		{"Suffix", 18002, "/app", "?debug", "http://localhost:18002/app?debug"},
		{"SuffixOnRoot", 18002, "", "index.html", "http://localhost:18002/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.BuildOpenURL(tt.port, tt.context, tt.custom))
		})
	}
}

func TestDefault(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Port)
	assert.Equal(t, "", cfg.ContextPath)
	assert.True(t, cfg.Wait)
	assert.Equal(t, "", cfg.WidgetSet)
	assert.False(t, cfg.ProductionMode)
	assert.Equal(t, config.DefaultTheme, cfg.Theme)
	assert.False(t, cfg.DevelopmentHeader)
	assert.False(t, cfg.OpenBrowser)
	assert.Equal(t, "", cfg.CustomBrowserURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.DirExists(t, cfg.ContextRootDirectory)
	assert.Equal(t, "http://localhost:[auto]/", cfg.DeployURL())
}

func TestFromProperties(t *testing.T) {
	root := t.TempDir()

	cfg, err := config.FromProperties(map[string]string{
		"server.port":           "18001",
		"server.await":          "false",
		"context.path":          "foo",
		"context.rootDir":       root,
		"vaadin.widgetSet":      "com.example.WidgetSet",
		"vaadin.productionMode": "true",
		"vaadin.theme":          "runo",
		"development.header":    "true",
		"open.browser":          "true",
		"browser.customUrl":     "/admin",
	})
	require.NoError(t, err)

	assert.Equal(t, 18001, cfg.Port)
	assert.False(t, cfg.Wait)
	assert.Equal(t, "/foo", cfg.ContextPath)
	assert.Equal(t, root, cfg.ContextRootDirectory)
	assert.Equal(t, "com.example.WidgetSet", cfg.WidgetSet)
	assert.True(t, cfg.ProductionMode)
	assert.Equal(t, "runo", cfg.Theme)
	assert.True(t, cfg.DevelopmentHeader)
	assert.True(t, cfg.OpenBrowser)
	assert.Equal(t, "/admin", cfg.CustomBrowserURL)
	assert.Equal(t, "http://localhost:18001/foo", cfg.DeployURL())
	assert.Equal(t, "http://localhost:18001/admin", cfg.OpenURL())
}

func TestFromProperties_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name  string
		props map[string]string
	}{
		{"MalformedPort", map[string]string{"server.port": "abc"}},
		{"NegativePort", map[string]string{"server.port": "-1"}},
		{"PortTooLarge", map[string]string{"server.port": "70000"}},
		{"MissingRootDir", map[string]string{"context.rootDir": missing}},
		{"RootDirIsFile", map[string]string{"context.rootDir": file}},
		{"MalformedBool", map[string]string{"server.await": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.FromProperties(tt.props)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, config.IsConfigurationError(err))
		})
	}
}

func TestFromProperties_BlankThemeFallsBack(t *testing.T) {
	cfg, err := config.FromProperties(map[string]string{"vaadin.theme": " "})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTheme, cfg.Theme)
}

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "embed.properties")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	root := t.TempDir()
	path := writeProperties(t, "server.port=18003\ncontext.path=/app\ncontext.rootDir="+root+"\nvaadin.theme=chameleon\n")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 18003, cfg.Port)
	assert.Equal(t, "/app", cfg.ContextPath)
	assert.Equal(t, root, cfg.ContextRootDirectory)
	assert.Equal(t, "chameleon", cfg.Theme)
	assert.True(t, cfg.Wait)
}

func TestLoadFile_EnvironmentOverridesFile(t *testing.T) {
	path := writeProperties(t, "server.port=18004\n")
	t.Setenv("EMBED_SERVER_PORT", "18005")
	t.Setenv("EMBED_VAADIN_PRODUCTIONMODE", "true")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 18005, cfg.Port)
	assert.True(t, cfg.ProductionMode)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.properties"))
	require.Error(t, err)
	assert.True(t, config.IsConfigurationError(err))
}

func TestLoad_WithoutDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Port)
}

func TestLoad_ReadsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(config.DefaultLocation, []byte("server.port=18006\n"), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 18006, cfg.Port)
}

func TestReadProperties(t *testing.T) {
	path := writeProperties(t, "# comment\nserver.port = 1\ncontext.rootDir=/tmp\n")

	props, err := config.ReadProperties(path, true)
	require.NoError(t, err)
	assert.Equal(t, "1", props["server.port"])
	assert.Equal(t, "/tmp", props["context.rootDir"])

	props, err = config.ReadProperties(filepath.Join(t.TempDir(), "absent"), false)
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EMBED_SERVER_PORT=18007\n"), 0o644))
	t.Setenv("EMBED_SERVER_PORT", "1")

	require.NoError(t, config.LoadEnvFile(path))
	assert.Equal(t, "18007", os.Getenv("EMBED_SERVER_PORT"))

	assert.NoError(t, config.LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

func TestResolvePort(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	assert.False(t, cfg.IsPortResolved())
	assert.Equal(t, 0, cfg.EffectivePort())

	require.NoError(t, cfg.ResolvePort(18008))
	assert.True(t, cfg.IsPortResolved())
	assert.Equal(t, 0, cfg.Port, "requested port is kept")
	assert.Equal(t, 18008, cfg.EffectivePort())
	assert.Equal(t, "http://localhost:18008/", cfg.DeployURL())

	assert.ErrorIs(t, cfg.ResolvePort(18009), config.ErrPortResolved)
	assert.Equal(t, 18008, cfg.EffectivePort())
}

func TestResolvePort_OutOfRange(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	err = cfg.ResolvePort(0)
	assert.True(t, config.IsInvalidArgument(err))
	assert.False(t, cfg.IsPortResolved())
}

func TestClone(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.SetContextPath("orig")

	cp := cfg.Clone()
	cp.SetContextPath("changed")
	cp.Theme = "other"
	require.NoError(t, cp.ResolvePort(18010))

	assert.Equal(t, "/orig", cfg.ContextPath)
	assert.Equal(t, config.DefaultTheme, cfg.Theme)
	assert.False(t, cfg.IsPortResolved())
	assert.Equal(t, cfg.ContextRootDirectory, cp.ContextRootDirectory)
}

func TestErrors(t *testing.T) {
	cause := os.ErrNotExist
	cerr := &config.ConfigurationError{Key: "context.rootDir", Message: "missing", Err: cause}
	assert.ErrorIs(t, cerr, cause)
	assert.Contains(t, cerr.Error(), "context.rootDir")

	ierr := config.NewInvalidArgument("theme", "must not be %s", "blank")
	assert.Equal(t, "invalid argument theme: must not be blank", ierr.Error())
	assert.True(t, config.IsInvalidArgument(ierr))
	assert.False(t, config.IsConfigurationError(ierr))
}
