package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pitwall/pitwallapi/services"
)

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user plus an empty preference record and returns a
// bearer token.
func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := requireFields(req.Email, req.Password); err != nil {
		return err
	}

	resp, err := h.Auth.Register(c.Request().Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login validates credentials and returns a fresh bearer token.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := requireFields(req.Email, req.Password); err != nil {
		return err
	}

	resp, err := h.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func requireFields(email, password string) error {
	var fields []services.FieldError
	if email == "" {
		fields = append(fields, services.FieldError{Field: "email", Message: "must not be blank"})
	}
	if strings.TrimSpace(password) == "" {
		fields = append(fields, services.FieldError{Field: "password", Message: "must not be blank"})
	}
	if len(fields) > 0 {
		return &services.ValidationError{Fields: fields}
	}
	return nil
}
