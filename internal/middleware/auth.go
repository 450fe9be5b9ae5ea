package middleware

import (
	"steiger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// RequireAuth ensures a user is in the session. Returns 401 with standard error format if not.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals(userLocal)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}

// GetUser returns the session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// IsAuthenticated reports whether the current request carries a session user.
// The wizard uses this to decide whether the auth step can be skipped.
func IsAuthenticated(c *fiber.Ctx) bool {
	return c.Locals(userLocal) != nil
}

// SessionEmail returns the authenticated user's email, or "" when anonymous.
func SessionEmail(c *fiber.Ctx) string {
	m, ok := c.Locals(userLocal).(map[string]interface{})
	if !ok {
		return ""
	}
	email, _ := m["email"].(string)
	return email
}
