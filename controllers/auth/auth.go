package auth

import (
	"os"

	"vtc-onboarding/logger"
	"vtc-onboarding/middleware"
	"vtc-onboarding/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthController handles the single-operator admin session.
type AuthController struct {
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{loggerInstance: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction, // Only secure in production (HTTPS)
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Login checks the form-encoded password against ADMIN_PASSWORD and
// opens a session on match. All outcomes redirect; errors travel as a
// query parameter on the admin page.
func (h *AuthController) Login(c *fiber.Ctx) error {
	password := c.FormValue("password")

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		logger.Error("ADMIN_PASSWORD is not configured", nil)
		return c.Redirect("/admin?error=server", fiber.StatusFound)
	}

	if password != adminPassword {
		h.loggerInstance.Log(utils.CreateLogEntry(c, "admin-login-failed"))
		return c.Redirect("/admin?error=invalid", fiber.StatusFound)
	}

	token, err := middleware.GenerateSessionToken()
	if err != nil {
		logger.Error("Failed to sign session token", err)
		return c.Redirect("/admin?error=server", fiber.StatusFound)
	}

	h.setSecureCookie(c, middleware.SessionCookieName, token, middleware.SessionMaxAge)
	logger.Success("Admin session opened")
	return c.Redirect("/admin", fiber.StatusFound)
}

// Logout clears the session cookie.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	h.setSecureCookie(c, middleware.SessionCookieName, "", -1)
	return c.Redirect("/", fiber.StatusFound)
}
