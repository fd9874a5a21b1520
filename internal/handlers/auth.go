// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mohamedshsba/sd/internal/services/auth"
)

// credentialsRequest is the request body for registration and login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account bound to the requesting client's address.
func (h *Handlers) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body.")
	}
	if req.Email == "" || req.Password == "" {
		return jsonError(c, http.StatusBadRequest, "Email and password are required.")
	}

	deviceAddr := c.RealIP()
	if deviceAddr == "" {
		return jsonError(c, http.StatusBadRequest, "Unable to retrieve device information.")
	}

	_, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, deviceAddr)
	switch {
	case errors.Is(err, auth.ErrInvalidEmail):
		return jsonError(c, http.StatusBadRequest, "Invalid email address.")
	case errors.Is(err, auth.ErrUserExists):
		return jsonError(c, http.StatusBadRequest, "Email already exists")
	case err != nil:
		slog.Error("register_failed", "error", err)
		return jsonError(c, http.StatusInternalServerError, "Error creating user")
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Registration successful",
	})
}

// Login verifies credentials and the device binding and returns the identity
// directly. There are no sessions or tokens.
func (h *Handlers) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body.")
	}
	if req.Email == "" || req.Password == "" {
		return jsonError(c, http.StatusBadRequest, "Email and password are required.")
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password, c.RealIP())
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		return jsonError(c, http.StatusBadRequest, "User not found.")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return jsonError(c, http.StatusBadRequest, "Invalid credentials.")
	case errors.Is(err, auth.ErrDeviceMismatch):
		return jsonError(c, http.StatusBadRequest, "This account can only be accessed from the registered device.")
	case err != nil:
		slog.Error("login_failed", "error", err)
		return jsonError(c, http.StatusInternalServerError, "Internal server error.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"email":   user.Email,
		"userId":  user.ID,
	})
}
