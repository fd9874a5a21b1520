// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
)

// CreateUsageEvent appends one row to the usage ledger. Rows are never
// updated or deleted.
func (r *Repository) CreateUsageEvent(ctx context.Context, videoPage, code string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO code_usage (video_page, code, usage_count) VALUES (?, ?, 1)`,
		videoPage, code)
	return wrapError(err)
}

// UsageCountsByPage returns the number of ledger rows per video page.
func (r *Repository) UsageCountsByPage(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryxContext(ctx,
		`SELECT video_page, COUNT(*) AS usage_count FROM code_usage GROUP BY video_page`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var page string
		var count int64
		if err := rows.Scan(&page, &count); err != nil {
			return nil, err
		}
		counts[page] = count
	}
	return counts, rows.Err()
}
