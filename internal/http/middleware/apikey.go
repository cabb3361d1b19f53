package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIKeyHeader is the request header carrying the shared secret.
const APIKeyHeader = "x-api-key"

// APIKey returns middleware that guards a route with a static shared secret.
//
// The header value is compared verbatim against the configured secret; a
// missing or mismatched key short-circuits with 403 and the downstream
// handler never runs. The comparison is not constant-time; with a single
// static key the timing channel is an accepted trade-off.
func APIKey(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(APIKeyHeader) != secret {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: Invalid API Key",
			})
		}
		return c.Next()
	}
}
