package handler

import (
	"context"
	"errors"
	"strconv"

	"kodevidecamp/internal/catalog"
	"kodevidecamp/internal/config"
	"kodevidecamp/internal/realtime"
	"kodevidecamp/internal/render"
	"kodevidecamp/internal/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RecaptchaVerifier matches config.VerifyRecaptcha.
type RecaptchaVerifier func(ctx context.Context, secret, token string) (bool, float64, error)

// Deps is everything the handlers need. Hub may be nil, in which case
// /ws/board is not mounted.
type Deps struct {
	Settings  config.Settings
	Slot      store.Slot
	FAQs      *catalog.FAQService
	Notices   *catalog.NoticeService
	Renderer  *render.Renderer
	Hub       *realtime.Hub
	Log       *zap.Logger
	Recaptcha RecaptchaVerifier
}

type Handler struct {
	Deps
}

func New(deps Deps) *Handler {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Recaptcha == nil {
		deps.Recaptcha = config.VerifyRecaptcha
	}
	if deps.Renderer == nil {
		deps.Renderer = render.MustNew()
	}
	return &Handler{Deps: deps}
}

func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "잘못된 ID입니다.",
	})
}

// fail maps a service error to a response. message is used for unexpected
// errors only.
func (h *Handler) fail(c *fiber.Ctx, err error, message string) error {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
			"field": verr.Field,
		})
	case errors.Is(err, catalog.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "요청한 항목을 찾을 수 없습니다.",
		})
	default:
		h.Log.Error(message, zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": message,
		})
	}
}
