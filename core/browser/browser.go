package browser

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrNoOpener is returned when no program able to open a URL is available.
var ErrNoOpener = errors.New("browser: no opener available")

// Launcher opens a URL in a browser.
type Launcher interface {
	Open(url string) error
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(url string) error

// Open calls f(url).
func (f LauncherFunc) Open(url string) error {
	return f(url)
}

// Command is a candidate program and the arguments placed before the URL.
type Command struct {
	Name string
	Args []string
}

// Candidates returns the opener commands tried for goos, in order.
func Candidates(goos string) []Command {
	switch goos {
	case "darwin":
		return []Command{{Name: "open"}}
	case "windows":
		return []Command{{Name: "rundll32", Args: []string{"url.dll,FileProtocolHandler"}}}
	default:
		return []Command{
			{Name: "xdg-open"},
			{Name: "x-www-browser"},
			{Name: "www-browser"},
			{Name: "sensible-browser"},
			{Name: "gnome-open"},
			{Name: "kde-open"},
		}
	}
}

// System opens URLs with the desktop's default browser.
type System struct {
	goos     string
	lookPath func(file string) (string, error)
	start    func(cmd *exec.Cmd) error
}

// NewSystem creates a launcher for the running OS.
func NewSystem() *System {
	return &System{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Open spawns the first available opener without waiting for it.
func (s *System) Open(url string) error {
	for _, c := range Candidates(s.goos) {
		path, err := s.lookPath(c.Name)
		if err != nil {
			continue
		}
		args := append(append([]string{}, c.Args...), url)
		cmd := exec.Command(path, args...)
		if err := s.start(cmd); err != nil {
			return fmt.Errorf("browser: start %s: %w", c.Name, err)
		}
		if cmd.Process != nil {
			// Reap the child once it exits.
			go func() { _ = cmd.Wait() }()
		}
		return nil
	}
	return fmt.Errorf("%w on %s", ErrNoOpener, s.goos)
}
