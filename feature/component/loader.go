package component

import (
	"embed-ui/core/loader"
	"embed-ui/core/server"
	"embed-ui/core/ui"
	"embed-ui/feature/content"

	"go.uber.org/zap"
)

// Deployment serves a single component, wrapped into an application when the
// server configures itself.
type Deployment struct {
	component ui.Component
}

// NewDeployment creates the deployment of c.
func NewDeployment(c ui.Component) *Deployment {
	return &Deployment{component: c}
}

// Configure implements server.Deployment.
func (d *Deployment) Configure(srv *server.Server, mgr *loader.Manager) error {
	w := Wrapper{
		DevelopmentHeader: srv.Config().DevelopmentHeader,
		Stopper:           srv,
		Logger:            srv.Logger(),
	}
	wrapped := w.Wrap(d.component)
	srv.Logger().Debug("Component wrapped",
		zap.Stringer("variant", wrapped.Variant),
		zap.Bool("development_header", w.DevelopmentHeader),
	)

	mgr.Register(content.NewFeature(wrapped.Application, srv))
	return nil
}
