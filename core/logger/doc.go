// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for development or production use and
// integrates with the Fiber web framework used by the embedded server.
//
// # Context Awareness
//
// Every request served by an embedded server carries a RayID (request id).
// The WithRayID helper extracts it from a Fiber context and attaches it to the
// log entry, so the logs of a single request (a page render, a button click)
// can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (colored, human readable) or json
//
// Both are read from the log.level and log.format properties.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Embedded server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Click listener failed", zap.Error(err))
package logger
