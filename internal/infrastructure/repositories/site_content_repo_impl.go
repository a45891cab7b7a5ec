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

// SiteContentRepository implements site content data operations
type SiteContentRepository struct {
	db *gorm.DB
}

// NewSiteContentRepository creates a new site content repository
func NewSiteContentRepository(db *gorm.DB) *SiteContentRepository {
	return &SiteContentRepository{db: db}
}

func (r *SiteContentRepository) Create(ctx context.Context, input *entities.CreateSiteContentInput) (*entities.SiteContentItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.SiteContentItem{
		ID:        uuid.New(),
		Type:      string(input.Type),
		Title:     input.Title,
		Body:      input.Body,
		IsActive:  input.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return siteContentToEntity(m), nil
}

func (r *SiteContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SiteContentItem, error) {
	var m models.SiteContentItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	e := siteContentToEntity(&m)
	if err := e.Validate(); err != nil {
		return nil, domainerrors.CorruptRecord(err)
	}
	return e, nil
}

func (r *SiteContentRepository) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateSiteContentInput) (*entities.SiteContentItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var m models.SiteContentItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}

	if input.Type != nil {
		m.Type = string(*input.Type)
	}
	if input.Title != nil {
		m.Title = *input.Title
	}
	if input.Body != nil {
		m.Body = *input.Body
	}
	if input.IsActive != nil {
		m.IsActive = *input.IsActive
	}
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, storageErr(err)
	}
	return siteContentToEntity(&m), nil
}

func (r *SiteContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SiteContentItem{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *SiteContentRepository) List(ctx context.Context, activeOnly bool) ([]*entities.SiteContentItem, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var ms []models.SiteContentItem
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err)
	}
	out := make([]*entities.SiteContentItem, 0, len(ms))
	for i := range ms {
		out = append(out, siteContentToEntity(&ms[i]))
	}
	return out, nil
}

func siteContentToEntity(m *models.SiteContentItem) *entities.SiteContentItem {
	return &entities.SiteContentItem{
		ID:        m.ID,
		Type:      entities.SiteContentType(m.Type),
		Title:     m.Title,
		Body:      m.Body,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
