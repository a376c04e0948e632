package application

import (
	"embed-ui/core/builder"
	"embed-ui/core/config"
	"embed-ui/core/loader"
	"embed-ui/core/server"
	"embed-ui/core/ui"
	"embed-ui/feature/content"
)

// Deployment serves a fixed application.
type Deployment struct {
	app *ui.Application
}

// NewDeployment creates the deployment of app.
func NewDeployment(app *ui.Application) *Deployment {
	return &Deployment{app: app}
}

// Configure implements server.Deployment.
func (d *Deployment) Configure(srv *server.Server, mgr *loader.Manager) error {
	if d.app == nil {
		return config.NewInvalidArgument("application", "must not be nil")
	}
	mgr.Register(content.NewFeature(d.app, srv))
	return nil
}

// Builder configures a server for an application.
type Builder struct {
	*builder.Base
	app *ui.Application
}

// New creates a builder for app.
func New(app *ui.Application) *Builder {
	b := &Builder{app: app}
	b.Base = builder.NewBase(b)
	if app == nil {
		b.Fail(config.NewInvalidArgument("application", "must not be nil"))
	}
	return b
}

// Build creates a server for the application without starting it.
func (b *Builder) Build() (*server.Server, error) {
	cfg, opts, err := b.Snapshot()
	if err != nil {
		return nil, err
	}
	return server.New(cfg, NewDeployment(b.app), opts...), nil
}
