package server

import "time"

// Settings tunes the engine itself. Zero fields take the tag defaults.
type Settings struct {
	// Host is the interface to bind, empty binds all interfaces.
	Host string `default:""`
	// ShutdownTimeout bounds the graceful shutdown of open connections.
	ShutdownTimeout time.Duration `default:"5s"`
}
