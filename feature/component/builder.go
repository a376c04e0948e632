package component

import (
	"embed-ui/core/builder"
	"embed-ui/core/config"
	"embed-ui/core/server"
	"embed-ui/core/ui"
)

// Builder configures a server for a single component.
type Builder struct {
	*builder.Base
	component ui.Component
}

// New creates a builder for c.
func New(c ui.Component) *Builder {
	b := &Builder{component: c}
	b.Base = builder.NewBase(b)
	if ui.IsNil(c) {
		b.Fail(config.NewInvalidArgument("component", "must not be nil"))
	}
	return b
}

// WithDevelopmentHeader adds the shutdown header above the component.
func (b *Builder) WithDevelopmentHeader(enabled bool) *Builder {
	b.Update(func(cfg *config.Config) { cfg.DevelopmentHeader = enabled })
	return b
}

// Build creates a server for the component without starting it.
func (b *Builder) Build() (*server.Server, error) {
	cfg, opts, err := b.Snapshot()
	if err != nil {
		return nil, err
	}
	return server.New(cfg, NewDeployment(b.component), opts...), nil
}
