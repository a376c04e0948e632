package config

import (
	"errors"
	"fmt"
)

// ErrPortResolved is returned when the effective port is resolved a second time.
var ErrPortResolved = errors.New("config: port already resolved")

// ConfigurationError reports a property source or value that cannot produce a
// valid configuration.
type ConfigurationError struct {
	Key     string // Property key or source path, when known
	Message string // Human-readable error message
	Err     error  // Underlying error (if any)
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	msg := e.Message
	if e.Key != "" {
		msg = fmt.Sprintf("%s [%s]", e.Message, e.Key)
	}
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s (caused by: %v)", msg, e.Err)
	}
	return "configuration error: " + msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError reports a rejected builder argument. The configuration
// it was meant for is left untouched.
type InvalidArgumentError struct {
	Argument string
	Message  string
}

// NewInvalidArgument creates an InvalidArgumentError for the named argument.
func NewInvalidArgument(argument, format string, a ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Message: fmt.Sprintf(format, a...)}
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Message)
}

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsInvalidArgument reports whether err is or wraps an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}
