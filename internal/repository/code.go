// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"github.com/mohamedshsba/sd/internal/models"
)

// CreateCode stores a freshly issued code value. Returns ErrDuplicate if the
// value is already present.
func (r *Repository) CreateCode(ctx context.Context, code *models.Code) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO codes (code) VALUES (?)`, code.Code)
	if err != nil {
		return wrapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	code.ID = id
	return nil
}

// ListCodes returns all unredeemed codes, oldest first.
func (r *Repository) ListCodes(ctx context.Context) ([]models.Code, error) {
	codes := []models.Code{}
	err := r.db.SelectContext(ctx, &codes, `SELECT * FROM codes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// ConsumeCode deletes the row for the given value and reports whether a row
// was actually deleted. The conditional delete is a single statement, so two
// concurrent redemptions of the same value cannot both see true.
func (r *Repository) ConsumeCode(ctx context.Context, value string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM codes WHERE code = ?`, value)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
