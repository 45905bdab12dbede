package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pitwall/pitwallapi/services"
)

// GetCalendar lists events filtered by optional series and year params. With
// neither filter it returns only upcoming events, the default calendar view.
func (h *Handler) GetCalendar(c echo.Context) error {
	ctx := c.Request().Context()
	series := c.QueryParam("series")
	year := optionalInt(c.QueryParam("year"))

	switch {
	case series != "" && year != nil:
		events, err := h.Calendar.EventsBySeriesAndYear(ctx, series, *year)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, events)
	case series != "":
		events, err := h.Calendar.EventsBySeries(ctx, series)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, events)
	case year != nil:
		events, err := h.Calendar.EventsByYear(ctx, *year)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, events)
	default:
		events, err := h.Calendar.UpcomingEvents(ctx)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, events)
	}
}

// CalendarRange lists events starting between from and to inclusive. Both
// bounds are required YYYY-MM-DD dates.
func (h *Handler) CalendarRange(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")

	var fields []services.FieldError
	if _, err := time.Parse("2006-01-02", from); err != nil {
		fields = append(fields, services.FieldError{Field: "from", Message: "must be a date in YYYY-MM-DD form"})
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		fields = append(fields, services.FieldError{Field: "to", Message: "must be a date in YYYY-MM-DD form"})
	}
	if len(fields) > 0 {
		return &services.ValidationError{Fields: fields}
	}

	events, err := h.Calendar.EventsBetween(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Seasons lists the available season years, optionally for one series.
func (h *Handler) Seasons(c echo.Context) error {
	years, err := h.Calendar.AvailableYears(c.Request().Context(), c.QueryParam("series"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, years)
}

// SeriesCalendar lists one series' events, optionally narrowed to a year.
func (h *Handler) SeriesCalendar(c echo.Context) error {
	ctx := c.Request().Context()
	series := c.Param("series")

	if year := optionalInt(c.QueryParam("year")); year != nil {
		events, err := h.Calendar.EventsBySeriesAndYear(ctx, series, *year)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, events)
	}

	events, err := h.Calendar.EventsBySeries(ctx, series)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
