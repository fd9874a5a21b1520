// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"

	"github.com/mohamedshsba/sd/internal/models"
	"github.com/mohamedshsba/sd/internal/repository"
	"github.com/mohamedshsba/sd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCode(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	code := &models.Code{Code: "abcdef1234567890"}
	err := repo.CreateCode(ctx, code)

	require.NoError(t, err)
	assert.NotZero(t, code.ID)
}

func TestCreateCode_Duplicate(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestCode(t, repo, "abcdef1234567890")

	err := repo.CreateCode(ctx, &models.Code{Code: "abcdef1234567890"})

	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestListCodes(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestCode(t, repo, "first")
	testutil.NewTestCode(t, repo, "second")

	codes, err := repo.ListCodes(ctx)

	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "first", codes[0].Code)
	assert.Equal(t, "second", codes[1].Code)
}

func TestListCodes_Empty(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	codes, err := repo.ListCodes(context.Background())

	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestConsumeCode(t *testing.T) {
	db, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestCode(t, repo, "onetime")

	consumed, err := repo.ConsumeCode(ctx, "onetime")

	require.NoError(t, err)
	assert.True(t, consumed)

	var count int64
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM codes WHERE code = 'onetime'`))
	assert.Zero(t, count)
}

func TestConsumeCode_Unknown(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	consumed, err := repo.ConsumeCode(context.Background(), "never-issued")

	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestConsumeCode_Twice(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestCode(t, repo, "onetime")

	consumed, err := repo.ConsumeCode(ctx, "onetime")
	require.NoError(t, err)
	require.True(t, consumed)

	consumed, err = repo.ConsumeCode(ctx, "onetime")
	require.NoError(t, err)
	assert.False(t, consumed)
}
