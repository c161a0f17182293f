package registry

import (
	"emoji-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for registry lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the registry routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/emojis")
	group.Get("/", h.HandleList)
	group.Post("/reload", h.HandleReload)
	group.Get("/:name", h.HandleGet)
}

// HandleList returns every registered emoji.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	entries := h.service.List()
	return c.JSON(fiber.Map{
		"count":  len(entries),
		"emojis": entries,
	})
}

// HandleGet returns one emoji by name.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	name := c.Params("name")
	entry, ok := h.service.Get(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "emoji not found",
			"name":  name,
		})
	}
	return c.JSON(entry)
}

// HandleReload re-reads the index from disk.
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	count, err := h.service.Reload()
	if err != nil {
		l.Error("Registry reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status": "reloaded",
		"count":  count,
	})
}
