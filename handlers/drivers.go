package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetDriver returns one driver by slug.
func (h *Handler) GetDriver(c echo.Context) error {
	driver, err := h.Drivers.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, driver)
}

// SeriesDrivers lists the drivers whose team is entered in a series.
func (h *Handler) SeriesDrivers(c echo.Context) error {
	drivers, err := h.Drivers.BySeries(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, drivers)
}

// DriverResults lists a driver's race results, optionally for one season.
func (h *Handler) DriverResults(c echo.Context) error {
	results, err := h.Drivers.Results(
		c.Request().Context(),
		c.Param("slug"),
		optionalInt(c.QueryParam("year")),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}
