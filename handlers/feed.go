package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const defaultFeedSize = 20

// GetFeed returns a page of content items, newest first, optionally filtered
// to one series.
func (h *Handler) GetFeed(c echo.Context) error {
	page, err := h.Feed.Page(
		c.Request().Context(),
		c.QueryParam("series"),
		intOrDefault(c.QueryParam("page"), 0),
		intOrDefault(c.QueryParam("size"), defaultFeedSize),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// PersonalizedFeed serves the feed for an authenticated user. Preference
// weighting is not applied yet; it returns the plain feed.
func (h *Handler) PersonalizedFeed(c echo.Context) error {
	page, err := h.Feed.Page(
		c.Request().Context(),
		"",
		intOrDefault(c.QueryParam("page"), 0),
		intOrDefault(c.QueryParam("size"), defaultFeedSize),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
