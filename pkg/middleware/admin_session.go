package middleware

import (
	"portfolio-api/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminSession guards admin pages. Requests without a valid session cookie are
// redirected to the login page; the verified username is stored in locals.
func AdminSession(sessions *auth.SessionManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(auth.SessionCookieName)
		if token == "" {
			return c.Redirect("/admin/login", fiber.StatusFound)
		}

		username, err := sessions.VerifyToken(token)
		if err != nil {
			logger.Warn("Rejected admin session cookie", zap.Error(err))
			return c.Redirect("/admin/login", fiber.StatusFound)
		}

		c.Locals("adminUser", username)
		return c.Next()
	}
}
