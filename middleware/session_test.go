package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatal(err)
	}
	if !VerifySessionToken(token) {
		t.Fatal("freshly signed token must verify")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(token, ".")
	parts[2] = strings.Repeat("A", len(parts[2]))
	if VerifySessionToken(strings.Join(parts, ".")) {
		t.Fatal("tampered signature must not verify")
	}
	if VerifySessionToken("") || VerifySessionToken("garbage") {
		t.Fatal("malformed tokens must not verify")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "first-secret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("SESSION_SECRET", "rotated-secret")
	if VerifySessionToken(token) {
		t.Fatal("token signed under the old secret must not verify")
	}
}

func TestPasswordRotationInvalidatesSessions(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("ADMIN_PASSWORD", "rotated")
	if VerifySessionToken(token) {
		t.Fatal("rotating the admin password must invalidate outstanding sessions")
	}
}

func TestRequireSessionGuardsRoutes(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	app := fiber.New()
	app.Get("/api/admin/ping", RequireSession(), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status without cookie = %d, want 401", resp.StatusCode)
	}

	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status with session = %d, want 200", resp.StatusCode)
	}
}
