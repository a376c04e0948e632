// Package loader provides the plugin-like feature loading system.
//
// It allows the embedded server to register and initialize features (route
// groups) while it configures itself. Each feature implements the Feature
// interface, which defines its lifecycle hooks and route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Initialization and loading of enabled features via LoadAll()
//
// The server registers its own static content feature; each deployment mode
// (single component, full application) registers the feature that serves its
// content. Features can be developed and tested in isolation.
package loader
