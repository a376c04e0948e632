// Package builder holds the configuration surface shared by all deployment
// modes.
//
// Builder is the chainable interface; Base implements it once. Each
// deployment mode (a single component, a complete application) provides a
// concrete builder that embeds Base, may add mode-specific mutators, and
// implements Build to attach its deployment to a new server.
//
// # Errors
//
// Mutators validate their arguments immediately. An invalid argument leaves
// the configuration untouched and records an InvalidArgumentError; a broken
// property source records a ConfigurationError. The first error sticks: later
// mutators do nothing, Err reports it and Build/Start return it.
//
// # Usage
//
//	srv, err := component.New(ui.NewLabel("Hello")).
//	    WithDevelopmentHeader(true).
//	    WithHTTPPort(8080).
//	    Wait(false).
//	    Start()
package builder
