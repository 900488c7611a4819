package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"doctorconnect/config"
	"doctorconnect/models"
	"doctorconnect/utils"
)

// Staff gates the dashboard and admin surfaces. Callers without a valid
// staff session are redirected to the home page; no error is surfaced.
func Staff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Try the Authorization header first, then the session cookie
		var token string
		authHeader := c.Get("Authorization")
		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
				token = tokenParts[1]
			}
		} else {
			token = c.Cookies("access_token")
		}
		if token == "" {
			return c.Redirect("/", fiber.StatusFound)
		}

		claims, err := utils.ParseAccessToken(token)
		if err != nil {
			return c.Redirect("/", fiber.StatusFound)
		}

		var user models.User
		if err := config.DB.First(&user, claims.UserID).Error; err != nil {
			return c.Redirect("/", fiber.StatusFound)
		}

		if !user.IsActive || !user.IsStaff {
			return c.Redirect("/", fiber.StatusFound)
		}

		c.Locals("user", &user)
		return c.Next()
	}
}
