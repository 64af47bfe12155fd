package middleware

import (
	"strings"

	"kodevidecamp/internal/config"
	"kodevidecamp/internal/helper"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by JWTAuth.
const (
	LocalUsername = "username"
	LocalRole     = "role"
	LocalClaims   = "claims"
)

func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "인증 정보가 없습니다.",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "잘못된 인증 형식입니다.",
			})
		}

		claims, err := config.ValidateToken(secret, tokenParts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "토큰이 유효하지 않거나 만료되었습니다.",
			})
		}

		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClaims, claims)

		return c.Next()
	}
}

// RoleAuth must run after JWTAuth.
func RoleAuth(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, _ := c.Locals(LocalClaims).(*config.JWTClaims)
		if err := helper.CheckClaimsRole(claims, allowedRoles...); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "관리자 권한이 필요합니다.",
			})
		}
		return c.Next()
	}
}
