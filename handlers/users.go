package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitwall/pitwallapi/middleware"
	"github.com/pitwall/pitwallapi/services"
)

// GetPreferences returns the authenticated user's followed lists.
func (h *Handler) GetPreferences(c echo.Context) error {
	email, ok := c.Get(middleware.EmailContextKey).(string)
	if !ok || email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	prefs, err := h.Auth.GetPreferences(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences overwrites the authenticated user's followed lists and
// echoes the saved value.
func (h *Handler) UpdatePreferences(c echo.Context) error {
	email, ok := c.Get(middleware.EmailContextKey).(string)
	if !ok || email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	var dto services.UserPreferenceDTO
	if err := c.Bind(&dto); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.Auth.UpdatePreferences(c.Request().Context(), email, &dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}
