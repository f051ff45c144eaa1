package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/NaouresKraiem/kachabity-sub002/internal/log"
)

// RequireAdmin gates the admin routes behind a static token header.
// Real authentication lives in an external collaborator; this is only the
// seam it plugs into.
func RequireAdmin(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			log.Security(c, "admin.token.unset", nil)
			return fail(c, fiber.StatusForbidden, "admin access disabled")
		}
		got := c.Get("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			log.Security(c, "admin.token.reject", nil)
			return fail(c, fiber.StatusUnauthorized, "invalid admin token")
		}
		return c.Next()
	}
}
