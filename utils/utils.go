package utils

import (
	"os"
	"strings"
	"time"

	"vtc-onboarding/types"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
)

// GetEnv reads an environment variable with a cast-coerced default.
func GetEnv(key string, fallback interface{}) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return cast.ToString(fallback)
}

// AssetURL rewrites a stored file reference into a downloadable URL on
// the file store. Empty references map to "#" so templates always get
// a usable href.
func AssetURL(fileID string) string {
	if fileID == "" {
		return "#"
	}
	base := strings.TrimSuffix(os.Getenv("FILES_BASE_URL"), "/")
	return base + "/assets/" + fileID + "?download"
}

// CreateLogEntry builds a deep-copied audit entry from the completed
// request context. Bodies and headers are copied out of fasthttp's
// reusable buffers before the handler returns.
func CreateLogEntry(c *fiber.Ctx, actor string) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		Actor:           actor,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

const maxLoggedBody = 64 * 1024

// sanitizeRequestBody copies the request body, truncating oversized
// payloads and masking form-encoded credentials.
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := c.Body()
	if len(body) > maxLoggedBody {
		return "[truncated: " + cast.ToString(len(body)) + " bytes]"
	}
	copied := string(append([]byte(nil), body...))
	if strings.Contains(c.Get(fiber.HeaderContentType), "application/x-www-form-urlencoded") &&
		strings.Contains(copied, "password=") {
		return "[form body with credentials redacted]"
	}
	return copied
}
