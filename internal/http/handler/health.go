package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Healthz pings the storage backend.
func (h *Handler) Healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.Slot.Ping(ctx); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "down",
			"backend": h.Settings.StoreBackend,
		})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"backend": h.Settings.StoreBackend,
	})
}
