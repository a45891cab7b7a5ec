package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/pkg/utils"
)

func validBugReportInput() *entities.CreateBugReportInput {
	return &entities.CreateBugReportInput{
		Description:   "Stored XSS in the feedback form message field allows script injection.",
		PocGdriveLink: "https://drive.google.com/file/d/abc123",
	}
}

func TestBugReportCreateDefaultsToPending(t *testing.T) {
	db := newTestDB(t)
	createBugReportTable(t, db)
	repo := NewBugReportRepository(db)
	ctx := context.Background()

	report, err := repo.Create(ctx, validBugReportInput())
	require.NoError(t, err)
	assert.Equal(t, entities.BugStatusPending, report.Status)
	assert.False(t, report.RewardedAt.Valid)
}

func TestBugReportShortDescriptionRejected(t *testing.T) {
	db := newTestDB(t)
	createBugReportTable(t, db)
	repo := NewBugReportRepository(db)

	input := validBugReportInput()
	input.Description = "too short"
	_, err := repo.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestBugReportStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	createBugReportTable(t, db)
	repo := NewBugReportRepository(db)
	ctx := context.Background()

	report, err := repo.Create(ctx, validBugReportInput())
	require.NoError(t, err)

	notes := "confirmed against staging"
	updated, err := repo.UpdateStatus(ctx, report.ID, &entities.UpdateBugReportStatusInput{
		Status:     entities.BugStatusVerified,
		AdminNotes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.BugStatusVerified, updated.Status)
	assert.Equal(t, notes, updated.AdminNotes.String)
	assert.False(t, updated.RewardedAt.Valid)

	// Any-to-any transitions are allowed, including straight back
	updated, err = repo.UpdateStatus(ctx, report.ID, &entities.UpdateBugReportStatusInput{Status: entities.BugStatusPending})
	require.NoError(t, err)
	assert.Equal(t, entities.BugStatusPending, updated.Status)
}

func TestBugReportRewardedStampsOnce(t *testing.T) {
	db := newTestDB(t)
	createBugReportTable(t, db)
	repo := NewBugReportRepository(db)
	ctx := context.Background()

	report, err := repo.Create(ctx, validBugReportInput())
	require.NoError(t, err)

	first, err := repo.UpdateStatus(ctx, report.ID, &entities.UpdateBugReportStatusInput{Status: entities.BugStatusRewarded})
	require.NoError(t, err)
	require.True(t, first.RewardedAt.Valid)

	// Leaving and re-entering Rewarded keeps the original stamp
	_, err = repo.UpdateStatus(ctx, report.ID, &entities.UpdateBugReportStatusInput{Status: entities.BugStatusFixed})
	require.NoError(t, err)
	second, err := repo.UpdateStatus(ctx, report.ID, &entities.UpdateBugReportStatusInput{Status: entities.BugStatusRewarded})
	require.NoError(t, err)
	assert.Equal(t, first.RewardedAt.Time.Unix(), second.RewardedAt.Time.Unix())
}

func TestBugReportInvalidStatusRejected(t *testing.T) {
	db := newTestDB(t)
	createBugReportTable(t, db)
	repo := NewBugReportRepository(db)
	ctx := context.Background()

	report, err := repo.Create(ctx, validBugReportInput())
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, report.ID, &entities.UpdateBugReportStatusInput{Status: "Escalated"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestBugReportListFilterAndCounts(t *testing.T) {
	db := newTestDB(t)
	createBugReportTable(t, db)
	repo := NewBugReportRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, validBugReportInput())
		require.NoError(t, err)
	}
	report, err := repo.Create(ctx, validBugReportInput())
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, report.ID, &entities.UpdateBugReportStatusInput{Status: entities.BugStatusFixed})
	require.NoError(t, err)

	items, total, err := repo.List(ctx, entities.BugStatusPending, utils.GetPaginationParams(1, 0))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, items, 3)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, counts[entities.BugStatusPending])
	assert.EqualValues(t, 1, counts[entities.BugStatusFixed])
}
