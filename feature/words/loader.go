package words

import (
	"grimoire/core/middleware/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Words feature. protect guards the routes that
// modify stored words; limits guard the lookup routes. m records cache
// hits and misses and may be nil.
func NewFeature(svc *Service, logger *zap.Logger, m *metrics.Metrics, protect fiber.Handler, limits ...fiber.Handler) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc, logger, m, protect, limits...)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "words"
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
