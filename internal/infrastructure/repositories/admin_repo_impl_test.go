package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
)

func TestAdminCreateAndGetByEmail(t *testing.T) {
	db := newTestDB(t)
	createAdminCredentialTable(t, db)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	input := &entities.CreateAdminInput{
		Email:           "ops@mintfire.dev",
		Password:        "s3cret-password",
		ConfirmPassword: "s3cret-password",
	}
	created, err := repo.Create(ctx, input, "$2a$12$fakehash")
	require.NoError(t, err)
	assert.Equal(t, "ops@mintfire.dev", created.Email)

	got, err := repo.GetByEmail(ctx, "ops@mintfire.dev")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "$2a$12$fakehash", got.PasswordHash)
}

func TestAdminDuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	createAdminCredentialTable(t, db)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	input := &entities.CreateAdminInput{
		Email:           "ops@mintfire.dev",
		Password:        "s3cret-password",
		ConfirmPassword: "s3cret-password",
	}
	_, err := repo.Create(ctx, input, "hash1")
	require.NoError(t, err)

	_, err = repo.Create(ctx, input, "hash2")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAdminConfirmPasswordMismatch(t *testing.T) {
	db := newTestDB(t)
	createAdminCredentialTable(t, db)
	repo := NewAdminRepository(db)

	input := &entities.CreateAdminInput{
		Email:           "ops@mintfire.dev",
		Password:        "s3cret-password",
		ConfirmPassword: "different",
	}
	_, err := repo.Create(context.Background(), input, "hash")
	require.Error(t, err)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "confirmPassword", appErr.Fields[0].Path)
}

func TestSuperActionMarkUsedFirstWins(t *testing.T) {
	db := newTestDB(t)
	createSuperActionCodeTable(t, db)
	repo := NewSuperActionRepository(db)
	ctx := context.Background()

	code, err := repo.Create(ctx, "hash-of-code")
	require.NoError(t, err)

	unused, err := repo.ListUnused(ctx)
	require.NoError(t, err)
	require.Len(t, unused, 1)

	require.NoError(t, repo.MarkUsed(ctx, code.ID))

	// Second redemption of the same code loses
	assert.ErrorIs(t, repo.MarkUsed(ctx, code.ID), domainerrors.ErrNotFound)

	unused, err = repo.ListUnused(ctx)
	require.NoError(t, err)
	assert.Empty(t, unused)
}

func TestAuditRecordAndList(t *testing.T) {
	db := newTestDB(t)
	createAuditEntryTable(t, db)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, "super_action_denied", "ops@mintfire.dev", "invalid code presented"))
	require.NoError(t, repo.Record(ctx, "admin_created", "ops@mintfire.dev", "created admin new@mintfire.dev"))

	entries, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	actions := []string{entries[0].Action, entries[1].Action}
	assert.ElementsMatch(t, []string{"super_action_denied", "admin_created"}, actions)
	assert.Equal(t, "ops@mintfire.dev", entries[0].ActorEmail)

	one, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}
