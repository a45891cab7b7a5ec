package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
)

func TestHallOfFameAwardCreatesEntry(t *testing.T) {
	db := newTestDB(t)
	createHallOfFameTable(t, db)
	repo := NewHallOfFameRepository(db)
	ctx := context.Background()

	entry, err := repo.Award(ctx, &entities.AwardPointsInput{
		UserID:      "hunter-1",
		DisplayName: "Hunter One",
		Points:      50,
		Achievement: "First verified report",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, entry.TotalPoints)
	assert.Equal(t, []string{"First verified report"}, entry.Achievements)
	assert.True(t, entry.LastRewardedAt.Valid)
}

func TestHallOfFameAwardAccumulates(t *testing.T) {
	db := newTestDB(t)
	createHallOfFameTable(t, db)
	repo := NewHallOfFameRepository(db)
	ctx := context.Background()

	_, err := repo.Award(ctx, &entities.AwardPointsInput{UserID: "hunter-1", DisplayName: "Hunter One", Points: 50})
	require.NoError(t, err)

	entry, err := repo.Award(ctx, &entities.AwardPointsInput{UserID: "hunter-1", DisplayName: "Hunter 1", Points: 30, Achievement: "Critical find"})
	require.NoError(t, err)

	// Same user: points accumulate on one entry, name follows the award
	assert.Equal(t, 80, entry.TotalPoints)
	assert.Equal(t, "Hunter 1", entry.DisplayName)
	assert.Equal(t, []string{"Critical find"}, entry.Achievements)

	all, err := repo.ListRanked(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestHallOfFameAwardRejectsNonPositivePoints(t *testing.T) {
	db := newTestDB(t)
	createHallOfFameTable(t, db)
	repo := NewHallOfFameRepository(db)

	_, err := repo.Award(context.Background(), &entities.AwardPointsInput{UserID: "u", DisplayName: "U", Points: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	_, err = repo.Award(context.Background(), &entities.AwardPointsInput{UserID: "u", DisplayName: "U", Points: -5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestHallOfFameRankingOrder(t *testing.T) {
	db := newTestDB(t)
	createHallOfFameTable(t, db)
	repo := NewHallOfFameRepository(db)
	ctx := context.Background()

	_, err := repo.Award(ctx, &entities.AwardPointsInput{UserID: "bronze", DisplayName: "Bronze", Points: 10})
	require.NoError(t, err)
	_, err = repo.Award(ctx, &entities.AwardPointsInput{UserID: "gold", DisplayName: "Gold", Points: 100})
	require.NoError(t, err)
	_, err = repo.Award(ctx, &entities.AwardPointsInput{UserID: "silver", DisplayName: "Silver", Points: 40})
	require.NoError(t, err)

	ranked, err := repo.ListRanked(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "gold", ranked[0].UserID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "silver", ranked[1].UserID)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "bronze", ranked[2].UserID)
	assert.Equal(t, 3, ranked[2].Rank)

	// Ranks are derived, so listing again yields the same assignment
	again, err := repo.ListRanked(ctx)
	require.NoError(t, err)
	for i := range ranked {
		assert.Equal(t, ranked[i].Rank, again[i].Rank)
		assert.Equal(t, ranked[i].UserID, again[i].UserID)
	}
}

func TestHallOfFameCreateAndUpdate(t *testing.T) {
	db := newTestDB(t)
	createHallOfFameTable(t, db)
	repo := NewHallOfFameRepository(db)
	ctx := context.Background()

	entry, err := repo.Create(ctx, &entities.CreateHallOfFameInput{
		UserID:      "manual",
		DisplayName: "Manual Entry",
		TotalPoints: 25,
	})
	require.NoError(t, err)

	points := 75
	updated, err := repo.Update(ctx, entry.ID, &entities.UpdateHallOfFameInput{TotalPoints: &points})
	require.NoError(t, err)
	assert.Equal(t, 75, updated.TotalPoints)
	assert.Equal(t, "Manual Entry", updated.DisplayName)

	negative := -1
	_, err = repo.Update(ctx, entry.ID, &entities.UpdateHallOfFameInput{TotalPoints: &negative})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
