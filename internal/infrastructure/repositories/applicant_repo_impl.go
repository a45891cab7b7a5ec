package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/infrastructure/models"
)

// ApplicantRepository implements applicant data operations
type ApplicantRepository struct {
	db *gorm.DB
}

// NewApplicantRepository creates a new applicant repository
func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

// Create validates a public application and persists it as Pending
func (r *ApplicantRepository) Create(ctx context.Context, input *entities.CreateApplicantInput) (*entities.Applicant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.Applicant{
		ID:          uuid.New(),
		ResumeLink:  input.ResumeLink,
		GithubURL:   input.GithubURL,
		LinkedInURL: input.LinkedInURL,
		Status:      string(entities.ApplicantStatusPending),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return applicantToEntity(m), nil
}

// GetByID returns an applicant, re-validating the stored record
func (r *ApplicantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Applicant, error) {
	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	e := applicantToEntity(m)
	if err := e.Validate(); err != nil {
		return nil, domainerrors.CorruptRecord(err)
	}
	return e, nil
}

// Update merges a validated partial input onto the stored record
func (r *ApplicantRepository) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateApplicantInput) (*entities.Applicant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ResumeLink != nil {
		m.ResumeLink = *input.ResumeLink
	}
	if input.GithubURL != nil {
		m.GithubURL = *input.GithubURL
	}
	if input.LinkedInURL != nil {
		m.LinkedInURL = *input.LinkedInURL
	}
	if input.AdminNotes != nil {
		m.AdminNotes = input.AdminNotes
	}
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return applicantToEntity(m), nil
}

// UpdateStatus moves an applicant to another pipeline stage
func (r *ApplicantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateApplicantStatusInput) (*entities.Applicant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Status = string(input.Status)
	if input.AdminNotes != nil {
		m.AdminNotes = input.AdminNotes
	}
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return applicantToEntity(m), nil
}

// Delete removes an applicant
func (r *ApplicantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Applicant{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns applicants newest first, optionally filtered by status
func (r *ApplicantRepository) List(ctx context.Context, status entities.ApplicantStatus) ([]*entities.Applicant, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var ms []models.Applicant
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err)
	}
	out := make([]*entities.Applicant, 0, len(ms))
	for i := range ms {
		out = append(out, applicantToEntity(&ms[i]))
	}
	return out, nil
}

// CountByStatus returns applicant counts grouped by pipeline stage
func (r *ApplicantRepository) CountByStatus(ctx context.Context) (map[entities.ApplicantStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Applicant{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, storageErr(err)
	}

	counts := make(map[entities.ApplicantStatus]int64, len(rows))
	for _, row := range rows {
		counts[entities.ApplicantStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *ApplicantRepository) find(ctx context.Context, id uuid.UUID) (*models.Applicant, error) {
	var m models.Applicant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &m, nil
}

func applicantToEntity(m *models.Applicant) *entities.Applicant {
	return &entities.Applicant{
		ID:          m.ID,
		ResumeLink:  m.ResumeLink,
		GithubURL:   m.GithubURL,
		LinkedInURL: m.LinkedInURL,
		Status:      entities.ApplicantStatus(m.Status),
		AdminNotes:  null.StringFromPtr(m.AdminNotes),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
