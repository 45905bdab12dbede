package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetEvent returns one event with its series, circuit and sessions.
func (h *Handler) GetEvent(c echo.Context) error {
	event, err := h.Events.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// EventResults lists a session's results; without a sessionId it returns an
// empty list rather than rejecting the request.
func (h *Handler) EventResults(c echo.Context) error {
	results, err := h.Events.Results(
		c.Request().Context(),
		optionalID(c.QueryParam("sessionId")),
		c.QueryParam("className"),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// EventResultClasses lists the class names present in a session's results.
func (h *Handler) EventResultClasses(c echo.Context) error {
	classes, err := h.Events.ResultClasses(c.Request().Context(), optionalID(c.QueryParam("sessionId")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

// EventTelemetry lists stored laps for a session.
func (h *Handler) EventTelemetry(c echo.Context) error {
	laps, err := h.Events.Telemetry(c.Request().Context(), optionalID(c.QueryParam("sessionId")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, laps)
}
