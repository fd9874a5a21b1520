// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mohamedshsba/sd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	h, _ := newTestHandlers(t)
	e := echo.New()
	body := `{"email":"alice@example.com","password":"secret123"}`
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/register", strings.NewReader(body))

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Registration successful"}`, rec.Body.String())
}

func TestRegister_MissingFields(t *testing.T) {
	h, _ := newTestHandlers(t)
	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/register", strings.NewReader(`{"email":"alice@example.com"}`))

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h, _ := newTestHandlers(t)
	e := echo.New()
	body := `{"email":"alice@example.com","password":"secret123"}`

	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/register", strings.NewReader(body))
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = testutil.NewEchoContext(e, http.MethodPost, "/register", strings.NewReader(body))
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	h, _ := newTestHandlers(t)
	e := echo.New()
	body := `{"email":"alice@example.com","password":"secret123"}`

	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/register", strings.NewReader(body))
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = testutil.NewEchoContext(e, http.MethodPost, "/login", strings.NewReader(body))
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Email   string `json:"email"`
		UserID  int64  `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.NotZero(t, resp.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	h, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/register",
		strings.NewReader(`{"email":"alice@example.com","password":"secret123"}`))
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = testutil.NewEchoContext(e, http.MethodPost, "/login",
		strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`))
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials."}`, rec.Body.String())
}

func TestLogin_UnknownUser(t *testing.T) {
	h, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"secret123"}`))
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"User not found."}`, rec.Body.String())
}

func TestLogin_DeviceMismatch(t *testing.T) {
	h, _ := newTestHandlers(t)
	e := echo.New()
	body := `{"email":"alice@example.com","password":"secret123"}`

	// Registration binds the account to httptest's default client address.
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/register", strings.NewReader(body))
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Login from a different address.
	c, rec = testutil.NewEchoContext(e, http.MethodPost, "/login", strings.NewReader(body))
	c.Request().Header.Set(echo.HeaderXRealIP, "198.51.100.7")
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "registered device")
}
