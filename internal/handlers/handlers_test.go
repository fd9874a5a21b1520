// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mohamedshsba/sd/internal/handlers"
	"github.com/mohamedshsba/sd/internal/repository"
	"github.com/mohamedshsba/sd/internal/services/auth"
	"github.com/mohamedshsba/sd/internal/services/codes"
	"github.com/mohamedshsba/sd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandlers wires handlers over an in-memory database.
func newTestHandlers(t *testing.T) (*handlers.Handlers, *repository.Repository) {
	t.Helper()
	_, repo := testutil.NewTestDB(t)
	authService := auth.NewService(repo, "admin123@gmail.com", 4)
	codesService := codes.NewService(repo)
	return handlers.New(authService, codesService), repo
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandlers(t)
	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/health", nil)

	err := h.Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
