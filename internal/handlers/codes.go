// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mohamedshsba/sd/internal/services/codes"
)

// redemptionRequest is the request body for verifyCode and logCodeUsage.
type redemptionRequest struct {
	Code      string `json:"code"`
	VideoPage string `json:"videoPage"`
}

// AddCode issues a new single-use code and returns it for out-of-band
// distribution.
func (h *Handlers) AddCode(c echo.Context) error {
	code, err := h.codes.Issue(c.Request().Context())
	if err != nil {
		slog.Error("add_code_failed", "error", err)
		return jsonError(c, http.StatusInternalServerError, "Failed to add code")
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Code added successfully",
		"code":    code.Code,
	})
}

// ListCodes returns all unredeemed codes.
func (h *Handlers) ListCodes(c echo.Context) error {
	list, err := h.codes.List(c.Request().Context())
	if err != nil {
		slog.Error("list_codes_failed", "error", err)
		return jsonError(c, http.StatusInternalServerError, "Failed to retrieve codes")
	}

	return c.JSON(http.StatusOK, list)
}

// VerifyCode redeems a code: a valid code is consumed and its usage recorded;
// any later presentation of the same value is rejected.
func (h *Handlers) VerifyCode(c echo.Context) error {
	var req redemptionRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body.")
	}

	err := h.codes.Redeem(c.Request().Context(), req.Code, req.VideoPage)
	switch {
	case errors.Is(err, codes.ErrInvalidCode):
		return jsonError(c, http.StatusBadRequest, "Invalid code")
	case err != nil:
		slog.Error("verify_code_failed", "error", err)
		return jsonError(c, http.StatusInternalServerError, "Failed to verify code")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Code verified successfully and deleted.",
	})
}

// UsageCounts reports redemption tallies per video page, with known pages
// present even at zero.
func (h *Handlers) UsageCounts(c echo.Context) error {
	counts, err := h.codes.UsageCounts(c.Request().Context())
	if err != nil {
		slog.Error("usage_counts_failed", "error", err)
		return jsonError(c, http.StatusInternalServerError, "Failed to fetch code usage counts")
	}

	return c.JSON(http.StatusOK, counts)
}

// LogUsage appends a usage ledger row without consuming a code.
func (h *Handlers) LogUsage(c echo.Context) error {
	var req redemptionRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body.")
	}
	if req.Code == "" || req.VideoPage == "" {
		return jsonError(c, http.StatusBadRequest, "Code and videoPage are required")
	}

	if err := h.codes.LogUsage(c.Request().Context(), req.Code, req.VideoPage); err != nil {
		slog.Error("log_code_usage_failed", "error", err)
		return jsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Code usage logged successfully",
	})
}
