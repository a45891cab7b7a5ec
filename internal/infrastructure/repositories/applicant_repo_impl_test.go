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

func validApplicantInput() *entities.CreateApplicantInput {
	return &entities.CreateApplicantInput{
		ResumeLink:  "https://example.com/resume.pdf",
		GithubURL:   "https://github.com/candidate",
		LinkedInURL: "https://linkedin.com/in/candidate",
	}
}

func TestApplicantCreateDefaultsToPending(t *testing.T) {
	db := newTestDB(t)
	createApplicantTable(t, db)
	repo := NewApplicantRepository(db)

	applicant, err := repo.Create(context.Background(), validApplicantInput())
	require.NoError(t, err)
	assert.Equal(t, entities.ApplicantStatusPending, applicant.Status)
}

func TestApplicantRequiresAllLinks(t *testing.T) {
	db := newTestDB(t)
	createApplicantTable(t, db)
	repo := NewApplicantRepository(db)

	input := validApplicantInput()
	input.LinkedInURL = ""
	_, err := repo.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestApplicantPipeline(t *testing.T) {
	db := newTestDB(t)
	createApplicantTable(t, db)
	repo := NewApplicantRepository(db)
	ctx := context.Background()

	applicant, err := repo.Create(ctx, validApplicantInput())
	require.NoError(t, err)

	notes := "strong systems background"
	updated, err := repo.UpdateStatus(ctx, applicant.ID, &entities.UpdateApplicantStatusInput{
		Status:     entities.ApplicantStatusShortlisted,
		AdminNotes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ApplicantStatusShortlisted, updated.Status)
	assert.Equal(t, notes, updated.AdminNotes.String)

	// Multi-word stages round-trip intact
	updated, err = repo.UpdateStatus(ctx, applicant.ID, &entities.UpdateApplicantStatusInput{Status: entities.ApplicantStatusOfferExtended})
	require.NoError(t, err)
	assert.Equal(t, entities.ApplicantStatusOfferExtended, updated.Status)

	_, err = repo.UpdateStatus(ctx, applicant.ID, &entities.UpdateApplicantStatusInput{Status: "Ghosted"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestApplicantListByStatusAndCounts(t *testing.T) {
	db := newTestDB(t)
	createApplicantTable(t, db)
	repo := NewApplicantRepository(db)
	ctx := context.Background()

	a, err := repo.Create(ctx, validApplicantInput())
	require.NoError(t, err)
	_, err = repo.Create(ctx, validApplicantInput())
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, a.ID, &entities.UpdateApplicantStatusInput{Status: entities.ApplicantStatusHired})
	require.NoError(t, err)

	hired, err := repo.List(ctx, entities.ApplicantStatusHired)
	require.NoError(t, err)
	require.Len(t, hired, 1)
	assert.Equal(t, a.ID, hired[0].ID)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[entities.ApplicantStatusHired])
	assert.EqualValues(t, 1, counts[entities.ApplicantStatusPending])
}
