package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"vtc-onboarding/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookieName is the single admin session cookie.
	SessionCookieName = "admin_session"

	// SessionMaxAge is 7 days, in seconds.
	SessionMaxAge = 7 * 24 * 60 * 60
)

func sessionSecret() []byte {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "default-secret"
	}
	return []byte(secret)
}

// passwordFingerprint ties sessions to the configured admin password:
// rotating ADMIN_PASSWORD invalidates every outstanding cookie.
func passwordFingerprint() string {
	sum := sha256.Sum256([]byte(os.Getenv("ADMIN_PASSWORD")))
	return hex.EncodeToString(sum[:])
}

// GenerateSessionToken signs a new admin session token.
func GenerateSessionToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": "admin",
		"pwd": passwordFingerprint(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(SessionMaxAge * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// VerifySessionToken recomputes the expected signature and claims
// against the configured secret and password.
func VerifySessionToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return sessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	return claims["sub"] == "admin" && claims["pwd"] == passwordFingerprint()
}

// IsAuthenticated checks the session cookie on the current request.
func IsAuthenticated(c *fiber.Ctx) bool {
	cookie := c.Cookies(SessionCookieName)
	if cookie == "" {
		return false
	}
	return VerifySessionToken(cookie)
}

// RequireSession guards the admin routes.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAuthenticated(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Non autorisé",
				Status:  fiber.StatusUnauthorized,
			})
		}
		return c.Next()
	}
}
