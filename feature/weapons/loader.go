package weapons

import (
	"naval-tables/core/unpack"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new weapons feature.
func NewFeature(cfg Config, unpacker *unpack.Invoker, logger *zap.Logger) *Feature {
	svc := NewService(cfg, unpacker, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "weapons"
}

// IsEnabled reports whether a weapons directory is configured.
func (f *Feature) IsEnabled() bool {
	return f.service.cfg.WeaponsDir != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
