package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pitwall/pitwallapi/token"
)

func jwtRequest(t *testing.T, key []byte, authHeader string) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me/preferences", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotEmail string
	handler := JWT(key)(func(c echo.Context) error {
		gotEmail, _ = c.Get(EmailContextKey).(string)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, gotEmail
}

func TestJWTValidToken(t *testing.T) {
	key := []byte("key")
	raw, err := token.Issue(key, "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	code, email := jwtRequest(t, key, "Bearer "+raw)
	if code != http.StatusOK {
		t.Errorf("status = %d", code)
	}
	if email != "ana@example.com" {
		t.Errorf("context email = %q", email)
	}
}

func TestJWTMissingHeader(t *testing.T) {
	code, _ := jwtRequest(t, []byte("key"), "")
	if code != http.StatusUnauthorized {
		t.Errorf("status = %d", code)
	}
}

func TestJWTWrongKey(t *testing.T) {
	raw, err := token.Issue([]byte("other-key"), "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	code, _ := jwtRequest(t, []byte("key"), "Bearer "+raw)
	if code != http.StatusUnauthorized {
		t.Errorf("status = %d", code)
	}
}
