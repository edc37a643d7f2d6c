package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"taalimflow/utils"
)

// VisitorTracking records page hits. API calls are excluded; the SPA
// reports those through POST /api/visitor instead.
func VisitorTracking(tracker *utils.VisitorTracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Path(), "/api") {
			tracker.Record(utils.ClientIP(c), c.Get("User-Agent"))
		}
		return c.Next()
	}
}
