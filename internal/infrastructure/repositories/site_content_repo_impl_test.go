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

func TestSiteContentCreateAndListActive(t *testing.T) {
	db := newTestDB(t)
	createSiteContentTable(t, db)
	repo := NewSiteContentRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &entities.CreateSiteContentInput{
		Type:     entities.SiteContentBanner,
		Title:    "Launch week",
		Body:     "MintFire OS ships Friday.",
		IsActive: true,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &entities.CreateSiteContentInput{
		Type:  entities.SiteContentNews,
		Title: "Old item",
	})
	require.NoError(t, err)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Launch week", active[0].Title)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSiteContentInvalidType(t *testing.T) {
	db := newTestDB(t)
	createSiteContentTable(t, db)
	repo := NewSiteContentRepository(db)

	_, err := repo.Create(context.Background(), &entities.CreateSiteContentInput{
		Type:  "popup",
		Title: "Nope",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestSiteContentToggleActive(t *testing.T) {
	db := newTestDB(t)
	createSiteContentTable(t, db)
	repo := NewSiteContentRepository(db)
	ctx := context.Background()

	item, err := repo.Create(ctx, &entities.CreateSiteContentInput{
		Type:     entities.SiteContentAnnouncement,
		Title:    "Maintenance window",
		IsActive: true,
	})
	require.NoError(t, err)

	off := false
	updated, err := repo.Update(ctx, item.ID, &entities.UpdateSiteContentInput{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}
