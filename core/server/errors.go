package server

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStarted is returned by Stop when the server is not running.
	ErrNotStarted = errors.New("server: not started")
	// ErrAlreadyStarted is returned by Start on a server that was started before.
	ErrAlreadyStarted = errors.New("server: already started")
)

// ServerError reports a failure to configure, bind or announce the server.
type ServerError struct {
	Op   string // configure, bind, open browser
	Port int
	Err  error
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("server: %s failed on port %d: %v", e.Op, e.Port, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ServerError) Unwrap() error {
	return e.Err
}

// ShutdownWarning reports a server that did not stop cleanly. The server is
// stopped regardless and its exit hook is removed.
type ShutdownWarning struct {
	Err error
}

// Error implements the error interface
func (e *ShutdownWarning) Error() string {
	return fmt.Sprintf("server: shutdown did not complete cleanly: %v", e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ShutdownWarning) Unwrap() error {
	return e.Err
}
