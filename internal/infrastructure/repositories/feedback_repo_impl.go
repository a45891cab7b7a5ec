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

// FeedbackRepository implements feedback data operations
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, input *entities.CreateFeedbackInput) (*entities.Feedback, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.Feedback{
		ID:        uuid.New(),
		Rating:    input.Rating,
		Message:   input.Message,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return feedbackToEntity(m), nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Feedback, error) {
	var m models.Feedback
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	e := feedbackToEntity(&m)
	if err := e.Validate(); err != nil {
		return nil, domainerrors.CorruptRecord(err)
	}
	return e, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Feedback{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *FeedbackRepository) List(ctx context.Context) ([]*entities.Feedback, error) {
	var ms []models.Feedback
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, storageErr(err)
	}
	out := make([]*entities.Feedback, 0, len(ms))
	for i := range ms {
		out = append(out, feedbackToEntity(&ms[i]))
	}
	return out, nil
}

func feedbackToEntity(m *models.Feedback) *entities.Feedback {
	return &entities.Feedback{
		ID:        m.ID,
		Rating:    m.Rating,
		Message:   m.Message,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// WaitlistRepository implements waitlist data operations
type WaitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository creates a new waitlist repository
func NewWaitlistRepository(db *gorm.DB) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

func (r *WaitlistRepository) Create(ctx context.Context, input *entities.CreateWaitlistInput) (*entities.WaitlistEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.WaitlistEntry{
		ID:          uuid.New(),
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return waitlistToEntity(m), nil
}

func (r *WaitlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.WaitlistEntry, error) {
	var m models.WaitlistEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	e := waitlistToEntity(&m)
	if err := e.Validate(); err != nil {
		return nil, domainerrors.CorruptRecord(err)
	}
	return e, nil
}

func (r *WaitlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.WaitlistEntry{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *WaitlistRepository) List(ctx context.Context, productID string) ([]*entities.WaitlistEntry, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var ms []models.WaitlistEntry
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err)
	}
	out := make([]*entities.WaitlistEntry, 0, len(ms))
	for i := range ms {
		out = append(out, waitlistToEntity(&ms[i]))
	}
	return out, nil
}

func waitlistToEntity(m *models.WaitlistEntry) *entities.WaitlistEntry {
	return &entities.WaitlistEntry{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
