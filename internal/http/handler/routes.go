package handler

import (
	"kodevidecamp/internal/http/middleware"
	"kodevidecamp/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Routes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "KodeVideCamp board API",
		})
	})
	app.Get("/healthz", h.Healthz)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	secret := h.Settings.JWTSecret
	admin := []fiber.Handler{middleware.JWTAuth(secret), middleware.RoleAuth(models.RoleAdmin)}
	withAdmin := func(handler fiber.Handler) []fiber.Handler {
		return append(admin[:len(admin):len(admin)], handler)
	}

	api := app.Group("/api")

	// Auth
	api.Post("/login", h.Login)
	api.Post("/logout", middleware.JWTAuth(secret), h.Logout)

	// FAQ
	api.Get("/faqs", h.ListFAQs)
	api.Get("/faqs/:id", h.GetFAQ)
	api.Post("/faqs/:id/feedback", h.FAQFeedback)
	api.Post("/faqs", withAdmin(h.CreateFAQ)...)
	api.Delete("/faqs/:id", withAdmin(h.DeleteFAQ)...)

	// Notices
	api.Get("/notices", h.ListNotices)
	api.Get("/notices/:id", h.GetNotice)
	api.Post("/notices", withAdmin(h.CreateNotice)...)
	api.Delete("/notices/:id", withAdmin(h.DeleteNotice)...)

	// Rendered fragments
	app.Get("/faq/list", h.FAQListPage)
	app.Get("/notice/grid", h.NoticeGridPage)
	app.Get("/notice/:id", h.NoticeDetailPage)

	app.Get("/admin/export", middleware.BasicAuth(h.Settings.BasicAuthUser, h.Settings.BasicAuthPass), h.Export)

	if h.Hub != nil {
		app.Get("/ws/board", upgradeOnly, websocket.New(h.BoardWS))
	}
}
