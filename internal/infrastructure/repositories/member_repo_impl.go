package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/infrastructure/models"
)

// TeamMemberRepository implements team member data operations
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create validates the input and persists a new team member
func (r *TeamMemberRepository) Create(ctx context.Context, input *entities.CreateMemberInput) (*entities.TeamMember, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.TeamMember{
		ID:          uuid.New(),
		Name:        input.Name,
		Role:        input.Role,
		Email:       input.Email,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		GithubURL:   input.GithubURL,
		TwitterURL:  input.TwitterURL,
		LinkedInURL: input.LinkedInURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return teamMemberToEntity(m), nil
}

// GetByID returns a team member, re-validating the stored record
func (r *TeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	var m models.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	e := teamMemberToEntity(&m)
	if err := e.Validate(); err != nil {
		return nil, domainerrors.CorruptRecord(err)
	}
	return e, nil
}

// Update merges a validated partial input onto the stored record
func (r *TeamMemberRepository) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateMemberInput) (*entities.TeamMember, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var m models.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}

	applyMemberUpdate(input, &m.Name, &m.Role, &m.Email, &m.Description, &m.ImageURL, &m.GithubURL, &m.TwitterURL, &m.LinkedInURL)
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, storageErr(err)
	}
	return teamMemberToEntity(&m), nil
}

// Delete removes a team member; deleting an absent record is an error
func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns all team members, newest first
func (r *TeamMemberRepository) List(ctx context.Context) ([]*entities.TeamMember, error) {
	var ms []models.TeamMember
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, storageErr(err)
	}
	out := make([]*entities.TeamMember, 0, len(ms))
	for i := range ms {
		out = append(out, teamMemberToEntity(&ms[i]))
	}
	return out, nil
}

func teamMemberToEntity(m *models.TeamMember) *entities.TeamMember {
	return &entities.TeamMember{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Email:       m.Email,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		GithubURL:   m.GithubURL,
		TwitterURL:  m.TwitterURL,
		LinkedInURL: m.LinkedInURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// applyMemberUpdate copies non-nil input fields onto the target columns
func applyMemberUpdate(input *entities.UpdateMemberInput, name, role, email, description, imageURL, githubURL, twitterURL, linkedInURL *string) {
	if input.Name != nil {
		*name = *input.Name
	}
	if input.Role != nil {
		*role = *input.Role
	}
	if input.Email != nil {
		*email = *input.Email
	}
	if input.Description != nil {
		*description = *input.Description
	}
	if input.ImageURL != nil {
		*imageURL = *input.ImageURL
	}
	if input.GithubURL != nil {
		*githubURL = *input.GithubURL
	}
	if input.TwitterURL != nil {
		*twitterURL = *input.TwitterURL
	}
	if input.LinkedInURL != nil {
		*linkedInURL = *input.LinkedInURL
	}
}

// FounderRepository implements founder data operations
type FounderRepository struct {
	db *gorm.DB
}

// NewFounderRepository creates a new founder repository
func NewFounderRepository(db *gorm.DB) *FounderRepository {
	return &FounderRepository{db: db}
}

func (r *FounderRepository) Create(ctx context.Context, input *entities.CreateMemberInput) (*entities.Founder, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.Founder{
		ID:          uuid.New(),
		Name:        input.Name,
		Role:        input.Role,
		Email:       input.Email,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		GithubURL:   input.GithubURL,
		TwitterURL:  input.TwitterURL,
		LinkedInURL: input.LinkedInURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return founderToEntity(m), nil
}

func (r *FounderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Founder, error) {
	var m models.Founder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	e := founderToEntity(&m)
	if err := e.Validate(); err != nil {
		return nil, domainerrors.CorruptRecord(err)
	}
	return e, nil
}

func (r *FounderRepository) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateMemberInput) (*entities.Founder, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var m models.Founder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}

	applyMemberUpdate(input, &m.Name, &m.Role, &m.Email, &m.Description, &m.ImageURL, &m.GithubURL, &m.TwitterURL, &m.LinkedInURL)
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, storageErr(err)
	}
	return founderToEntity(&m), nil
}

func (r *FounderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Founder{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *FounderRepository) List(ctx context.Context) ([]*entities.Founder, error) {
	var ms []models.Founder
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, storageErr(err)
	}
	out := make([]*entities.Founder, 0, len(ms))
	for i := range ms {
		out = append(out, founderToEntity(&ms[i]))
	}
	return out, nil
}

func founderToEntity(m *models.Founder) *entities.Founder {
	return &entities.Founder{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Email:       m.Email,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		GithubURL:   m.GithubURL,
		TwitterURL:  m.TwitterURL,
		LinkedInURL: m.LinkedInURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
