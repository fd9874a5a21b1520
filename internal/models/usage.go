// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// UsageEvent is one row of the append-only redemption ledger. VideoPage is
// the category the counts are grouped by (e.g. "ph", "chem").
type UsageEvent struct { //nolint:govet // fieldalignment: readability over optimization
	ID         int64     `db:"id" json:"id"`
	VideoPage  string    `db:"video_page" json:"video_page"`
	Code       string    `db:"code" json:"code"`
	UsageCount int64     `db:"usage_count" json:"usage_count"`
	UsedAt     time.Time `db:"used_at" json:"used_at"`
}
