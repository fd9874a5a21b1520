// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mohamedshsba/sd/internal/services/auth"
	"github.com/mohamedshsba/sd/internal/services/codes"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	auth  *auth.Service
	codes *codes.Service
}

// New creates a new Handlers instance.
func New(authService *auth.Service, codesService *codes.Service) *Handlers {
	return &Handlers{auth: authService, codes: codesService}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// errorResponse is the JSON body for all failures.
type errorResponse struct {
	Error string `json:"error"`
}

func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
