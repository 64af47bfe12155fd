package handler

import (
	"kodevidecamp/internal/http/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Logout only acknowledges; tokens are stateless and expire on their own.
func (h *Handler) Logout(c *fiber.Ctx) error {
	username, _ := c.Locals(middleware.LocalUsername).(string)
	h.Log.Info("admin logged out", zap.String("username", username))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "관리자 모드가 해제되었습니다.",
	})
}
