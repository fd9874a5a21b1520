// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package codes implements the single-use access code lifecycle: issuing
// random codes, redeeming them exactly once and tallying redemptions per
// video page.
package codes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mohamedshsba/sd/internal/models"
	"github.com/mohamedshsba/sd/internal/repository"
)

var (
	// ErrInvalidCode is returned when a presented code value is unknown,
	// including values that were already redeemed.
	ErrInvalidCode = errors.New("invalid code")
	// ErrCodeConflict is returned when code generation keeps colliding with
	// stored values.
	ErrCodeConflict = errors.New("code value conflict")
)

// maxIssueAttempts bounds regeneration after a unique-constraint collision.
const maxIssueAttempts = 5

// KnownPages are the video pages always present in usage counts, even at zero.
var KnownPages = []string{"ph", "chem"}

// Service issues, redeems and tallies access codes.
type Service struct {
	repo *repository.Repository
	gen  *Generator
}

// NewService creates a codes service with the default random generator.
func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo, gen: NewGenerator()}
}

// NewServiceWithGenerator creates a codes service with a custom generator.
func NewServiceWithGenerator(repo *repository.Repository, gen *Generator) *Service {
	return &Service{repo: repo, gen: gen}
}

// Issue generates a new code value and stores it. Collisions with stored
// values trigger regeneration; after maxIssueAttempts the conflict is
// surfaced as ErrCodeConflict.
func (s *Service) Issue(ctx context.Context) (*models.Code, error) {
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		code := &models.Code{Code: s.gen.Generate()}

		err := s.repo.CreateCode(ctx, code)
		if err == nil {
			return code, nil
		}
		if errors.Is(err, repository.ErrDuplicate) {
			slog.Warn("issue_code_collision", "attempt", attempt+1)
			continue
		}
		return nil, fmt.Errorf("failed to store code: %w", err)
	}
	return nil, ErrCodeConflict
}

// List returns all currently redeemable codes.
func (s *Service) List(ctx context.Context) ([]models.Code, error) {
	return s.repo.ListCodes(ctx)
}

// Redeem consumes a code exactly once. The row delete is conditional, so of
// any number of concurrent attempts on the same value at most one succeeds;
// the rest get ErrInvalidCode. The ledger append runs after the delete and is
// best-effort: a failed append is logged but does not undo the redemption.
func (s *Service) Redeem(ctx context.Context, value, videoPage string) error {
	consumed, err := s.repo.ConsumeCode(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to consume code: %w", err)
	}
	if !consumed {
		return ErrInvalidCode
	}

	if err := s.repo.CreateUsageEvent(ctx, videoPage, value); err != nil {
		slog.Error("log_code_usage_failed", "video_page", videoPage, "error", err)
	}

	return nil
}

// LogUsage appends a ledger row without touching the code store. Backs the
// standalone usage-logging endpoint.
func (s *Service) LogUsage(ctx context.Context, value, videoPage string) error {
	if err := s.repo.CreateUsageEvent(ctx, videoPage, value); err != nil {
		return fmt.Errorf("failed to log code usage: %w", err)
	}
	return nil
}

// UsageCounts returns redemption tallies per video page. Known pages are
// always present, seeded with zero.
func (s *Service) UsageCounts(ctx context.Context) (map[string]int64, error) {
	counts, err := s.repo.UsageCountsByPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch usage counts: %w", err)
	}

	result := make(map[string]int64, len(counts)+len(KnownPages))
	for _, page := range KnownPages {
		result[page] = 0
	}
	for page, count := range counts {
		result[page] = count
	}
	return result, nil
}
