// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mohamedshsba/sd/internal/config"
	"github.com/mohamedshsba/sd/internal/database"
	"github.com/mohamedshsba/sd/internal/handlers"
	"github.com/mohamedshsba/sd/internal/repository"
	"github.com/mohamedshsba/sd/internal/services/auth"
	"github.com/mohamedshsba/sd/internal/services/codes"
	"github.com/urfave/cli/v3"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	setupLogger(cfg.Log.Level, cfg.Log.Format)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database", cfg.Database.DSN,
	)

	// Database (migrations run on open)
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	// Repository and services
	repo := repository.New(db)
	authService := auth.NewService(repo, cfg.Auth.AdminEmail, cfg.Auth.BcryptCost)
	codesService := codes.NewService(repo)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	setupMiddleware(e, cfg)
	setupRoutes(e, cfg, handlers.New(authService, codesService))

	return startWithGracefulShutdown(e, cfg)
}

func setupRoutes(e *echo.Echo, cfg *config.Config, h *handlers.Handlers) {
	e.GET("/health", h.Health)

	e.POST("/register", h.Register)
	e.POST("/login", h.Login)

	api := e.Group("/api")
	api.POST("/addCode", h.AddCode)
	api.GET("/codes", h.ListCodes)
	api.POST("/verifyCode", h.VerifyCode)
	api.GET("/getCodeUsageCounts", h.UsageCounts)
	api.POST("/logCodeUsage", h.LogUsage)

	// Static frontend
	e.Static("/", cfg.Server.StaticDir)
}

func startWithGracefulShutdown(e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("server running", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}
