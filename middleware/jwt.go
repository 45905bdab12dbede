package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pitwall/pitwallapi/token"
)

// EmailContextKey is where JWT stores the authenticated email on the echo
// context.
const EmailContextKey = "email"

// JWT returns an Echo middleware that validates the Authorization bearer
// token using the provided signing key and exposes the authenticated email to
// downstream handlers.
func JWT(key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			raw = strings.TrimPrefix(raw, "Bearer ")

			claims, err := token.Parse(key, raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(EmailContextKey, claims.Email)
			return next(c)
		}
	}
}
