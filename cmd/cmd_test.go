package cmd

import (
	"bytes"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"embed-ui/core/config"
	"embed-ui/core/server"
	"embed-ui/core/ui"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexPage_File(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexFile), []byte("<h1>Hi</h1>"), 0o644))

	page, err := indexPage(dir)
	require.NoError(t, err)

	html, ok := page.(*ui.HTML)
	require.True(t, ok)
	assert.Equal(t, "<h1>Hi</h1>", html.Content)
}

func TestIndexPage_Welcome(t *testing.T) {
	page, err := indexPage(t.TempDir())
	require.NoError(t, err)

	label, ok := page.(*ui.Label)
	require.True(t, ok)
	assert.Contains(t, label.Text, IndexFile)
}

func TestPrintConfig(t *testing.T) {
	color.NoColor = true

	cfg, err := config.FromProperties(map[string]string{
		"server.port":  "8080",
		"context.path": "app",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	printConfig(&out, cfg)

	assert.Contains(t, out.String(), "server.port")
	assert.Contains(t, out.String(), "8080")
	assert.Contains(t, out.String(), "(unset)")
	assert.Contains(t, out.String(), "deploy url: http://localhost:8080/app")
}

func TestStartCmd_OccupiedPort(t *testing.T) {
	t.Chdir(t.TempDir())

	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	RootCmd.SetArgs([]string{
		"start",
		"--port", strconv.Itoa(port),
		"--root-dir", t.TempDir(),
		"--env-file", filepath.Join(t.TempDir(), ".env"),
	})
	defer RootCmd.SetArgs(nil)

	result := make(chan error, 1)
	go func() { result <- RootCmd.Execute() }()

	select {
	case err := <-result:
		var serr *server.ServerError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "bind", serr.Op)
		assert.Equal(t, port, serr.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("start did not return after a bind failure")
	}
}
