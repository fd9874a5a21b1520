// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package auth implements registration and login with device binding. The
// bound "device" is the client network address observed at registration, not
// a hardware identifier.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/mohamedshsba/sd/internal/models"
	"github.com/mohamedshsba/sd/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrDeviceMismatch     = errors.New("account bound to a different device")
)

// Service handles account registration and authentication.
type Service struct {
	repo       *repository.Repository
	adminEmail string
	bcryptCost int
}

// NewService creates an auth service. adminEmail is exempt from the device
// binding check on login.
func NewService(repo *repository.Repository, adminEmail string, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, adminEmail: adminEmail, bcryptCost: bcryptCost}
}

// Register creates a new account bound to deviceAddr.
func (s *Service) Register(ctx context.Context, email, password, deviceAddr string) (*models.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	exists, err := s.repo.UserExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:         email,
		PasswordHash:  string(passwordHash),
		DeviceAddress: deviceAddr,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("register_success", "user_id", user.ID, "email", email)

	return user, nil
}

// Login verifies the credentials and the device binding. The configured admin
// email may log in from any address.
func (s *Service) Login(ctx context.Context, email, password, deviceAddr string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if email != s.adminEmail && user.DeviceAddress != deviceAddr {
		slog.Warn("login_device_mismatch", "user_id", user.ID)
		return nil, ErrDeviceMismatch
	}

	slog.Info("login_success", "user_id", user.ID)

	return user, nil
}
