package middleware

import (
	"log"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"taalimflow/config"
	"taalimflow/utils"
)

var openAdminWarning sync.Once

// AdminProtected guards the admin surface with a bearer token issued by
// the login endpoint. When no admin password hash is configured the
// guard passes requests through, matching the convention that an absent
// env var disables the feature.
func AdminProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if config.AppConfig.AdminPasswordHash == "" {
			openAdminWarning.Do(func() {
				log.Println("⚠️ ADMIN_PASSWORD_HASH not set; admin endpoints are unprotected")
			})
			return c.Next()
		}

		var token string
		authHeader := c.Get("Authorization")
		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false,
					"message": "Invalid authorization format",
				})
			}
			token = tokenParts[1]
		} else {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authorization required",
			})
		}

		if _, err := utils.ParseAdminToken(token); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		return c.Next()
	}
}
