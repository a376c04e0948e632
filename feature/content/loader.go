package content

import (
	"embed-ui/core/config"
	"embed-ui/core/ui"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Host is the server the application is deployed on.
type Host interface {
	Config() *config.Config
	Token() string
	Logger() *zap.Logger
}

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the feature serving app on host.
func NewFeature(app *ui.Application, host Host) *Feature {
	cfg := host.Config()
	svc := NewService(app, cfg, host.Logger())
	h := NewHandler(svc, host.Token(), cfg.ProductionMode)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "content"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
