package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID assigns a fresh id to every request and echoes it in the
// X-Request-Id response header. Incoming ids are not trusted.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.New().String()
		c.Locals("request_id", id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}
