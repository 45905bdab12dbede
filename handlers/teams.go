package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// TeamsBySeries lists the teams entered in a series.
func (h *Handler) TeamsBySeries(c echo.Context) error {
	teams, err := h.Teams.BySeries(c.Request().Context(), c.Param("seriesSlug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}
