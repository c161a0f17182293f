package registry

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new registry feature over dir.
func NewFeature(fsys afero.Fs, dir string, logger *zap.Logger) *Feature {
	svc := NewService(fsys, dir, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "registry"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load reads the index and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if _, err := f.service.Reload(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
