package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pitwall/pitwallapi/services"
)

// APIError is the error body shared by every failure response.
type APIError struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorHandler returns the single place where domain failures become HTTP
// status codes. Services never construct HTTP-shaped errors; anything
// unrecognized is logged server-side and surfaces as a generic 500.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			notFound   *services.NotFoundError
			duplicate  *services.DuplicateError
			validation *services.ValidationError
			httpErr    *echo.HTTPError
		)

		status := http.StatusInternalServerError
		label := "Internal Server Error"
		message := "An unexpected error occurred"

		switch {
		case errors.As(err, &notFound):
			status, label, message = http.StatusNotFound, "Not Found", notFound.Error()
			logger.Warn("resource not found", zap.String("resource", notFound.Resource), zap.String("id", notFound.ID))
		case errors.As(err, &duplicate):
			status, label, message = http.StatusConflict, "Conflict", duplicate.Error()
			logger.Warn("duplicate resource", zap.String("resource", duplicate.Resource), zap.String("id", duplicate.ID))
		case errors.Is(err, services.ErrInvalidCredentials):
			status, label, message = http.StatusUnauthorized, "Unauthorized", services.ErrInvalidCredentials.Error()
		case errors.As(err, &validation):
			status, label, message = http.StatusBadRequest, "Validation Failed", validation.Error()
		case errors.As(err, &httpErr):
			status = httpErr.Code
			label = http.StatusText(httpErr.Code)
			message = fmt.Sprintf("%v", httpErr.Message)
		default:
			logger.Error("unexpected error",
				zap.Error(err),
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
			)
		}

		body := APIError{
			Status:    status,
			Error:     label,
			Message:   message,
			Timestamp: time.Now().UTC(),
		}
		if err := c.JSON(status, body); err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}
