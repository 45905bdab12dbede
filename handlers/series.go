package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListSeries returns every championship.
func (h *Handler) ListSeries(c echo.Context) error {
	series, err := h.Series.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

// GetSeries returns one championship by slug.
func (h *Handler) GetSeries(c echo.Context) error {
	series, err := h.Series.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

// DriverStandings returns the driver championship table for a season,
// defaulting to the current calendar year.
func (h *Handler) DriverStandings(c echo.Context) error {
	standings, err := h.Standings.DriverStandings(
		c.Request().Context(),
		c.Param("slug"),
		effectiveYear(c.QueryParam("year")),
		c.QueryParam("className"),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, standings)
}

// ConstructorStandings is the team-level standings table.
func (h *Handler) ConstructorStandings(c echo.Context) error {
	standings, err := h.Standings.ConstructorStandings(
		c.Request().Context(),
		c.Param("slug"),
		effectiveYear(c.QueryParam("year")),
		c.QueryParam("className"),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, standings)
}

// StandingClasses lists the class names present in a season's standings.
func (h *Handler) StandingClasses(c echo.Context) error {
	classes, err := h.Standings.AvailableClasses(
		c.Request().Context(),
		c.Param("slug"),
		effectiveYear(c.QueryParam("year")),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}
