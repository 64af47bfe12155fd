package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

// BasicAuth guards a route with a single user. An empty user rejects every
// request, so the route is off until BASIC_AUTH_USER is configured.
func BasicAuth(user, pass string) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Authorizer: func(u, p string) bool {
			if user == "" {
				return false
			}
			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(p), []byte(pass)) == 1
			return userOK && passOK
		},
		Unauthorized: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		},
	})
}
