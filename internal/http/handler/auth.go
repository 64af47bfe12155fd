package handler

import (
	"crypto/subtle"

	"kodevidecamp/internal/config"
	"kodevidecamp/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the single admin account and issues a JWT. reCAPTCHA is only
// enforced when RECAPTCHA_SECRET_KEY is set.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "잘못된 요청입니다.",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "아이디와 비밀번호를 입력해주세요.",
		})
	}

	s := h.Settings
	if s.RecaptchaSecret != "" {
		if req.RecaptchaToken == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "reCAPTCHA 토큰이 올바르지 않습니다.",
			})
		}

		ok, score, err := h.Recaptcha(c.UserContext(), s.RecaptchaSecret, req.RecaptchaToken)
		if err != nil {
			h.Log.Error("recaptcha verify failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "reCAPTCHA 검증에 실패했습니다.",
			})
		}
		if !ok || score < s.RecaptchaMinScore {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "비정상적인 접근이 감지되었습니다.",
			})
		}
	}

	if s.AdminPasswordHash == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "관리자 계정이 설정되지 않았습니다.",
		})
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.AdminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.AdminPasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		h.Log.Info("admin login rejected", zap.String("username", req.Username))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "아이디 또는 비밀번호가 올바르지 않습니다.",
		})
	}

	token, err := config.GenerateToken(s.JWTSecret, s.AdminUsername, models.RoleAdmin, s.JWTTTL)
	if err != nil {
		h.Log.Error("generate token failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "토큰 발급에 실패했습니다.",
		})
	}

	h.Log.Info("admin logged in", zap.String("username", s.AdminUsername))
	return c.JSON(fiber.Map{
		"success": true,
		"message": "관리자 모드가 활성화되었습니다.",
		"data": models.LoginResponse{
			Token: token,
			Admin: models.AdminResponse{Username: s.AdminUsername, Role: models.RoleAdmin},
		},
	})
}
