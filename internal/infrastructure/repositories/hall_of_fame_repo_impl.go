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

// HallOfFameRepository implements leaderboard data operations
type HallOfFameRepository struct {
	db *gorm.DB
}

// NewHallOfFameRepository creates a new hall of fame repository
func NewHallOfFameRepository(db *gorm.DB) *HallOfFameRepository {
	return &HallOfFameRepository{db: db}
}

func (r *HallOfFameRepository) Create(ctx context.Context, input *entities.CreateHallOfFameInput) (*entities.HallOfFameEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.HallOfFameEntry{
		ID:           uuid.New(),
		UserID:       input.UserID,
		DisplayName:  input.DisplayName,
		TotalPoints:  input.TotalPoints,
		Achievements: encodeList(input.Achievements),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return hofToEntity(m), nil
}

func (r *HallOfFameRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.HallOfFameEntry, error) {
	var m models.HallOfFameEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	e := hofToEntity(&m)
	if err := e.Validate(); err != nil {
		return nil, domainerrors.CorruptRecord(err)
	}
	return e, nil
}

func (r *HallOfFameRepository) GetByUserID(ctx context.Context, userID string) (*entities.HallOfFameEntry, error) {
	var m models.HallOfFameEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return hofToEntity(&m), nil
}

func (r *HallOfFameRepository) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateHallOfFameInput) (*entities.HallOfFameEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var m models.HallOfFameEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}

	if input.DisplayName != nil {
		m.DisplayName = *input.DisplayName
	}
	if input.TotalPoints != nil {
		m.TotalPoints = *input.TotalPoints
	}
	if input.Achievements != nil {
		m.Achievements = encodeList(*input.Achievements)
	}
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, storageErr(err)
	}
	return hofToEntity(&m), nil
}

// Award adds points to a contributor's entry, creating it when absent,
// and stamps last_rewarded_at.
func (r *HallOfFameRepository) Award(ctx context.Context, input *entities.AwardPointsInput) (*entities.HallOfFameEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	var m models.HallOfFameEntry
	err := r.db.WithContext(ctx).Where("user_id = ?", input.UserID).First(&m).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storageErr(err)
		}
		m = models.HallOfFameEntry{
			ID:          uuid.New(),
			UserID:      input.UserID,
			DisplayName: input.DisplayName,
			CreatedAt:   now,
		}
	}

	m.DisplayName = input.DisplayName
	m.TotalPoints += input.Points
	if input.Achievement != "" {
		achievements := decodeList(m.Achievements)
		achievements = append(achievements, input.Achievement)
		m.Achievements = encodeList(achievements)
	}
	m.LastRewardedAt = &now
	m.UpdatedAt = now

	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, storageErr(err)
	}
	return hofToEntity(&m), nil
}

func (r *HallOfFameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.HallOfFameEntry{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListRanked returns all entries ordered by totalPoints descending, ties
// broken by earliest lastRewardedAt, with ranks assigned 1..n. Ranks are
// a pure function of the stored points, so recomputation is idempotent.
func (r *HallOfFameRepository) ListRanked(ctx context.Context) ([]*entities.HallOfFameEntry, error) {
	var ms []models.HallOfFameEntry
	err := r.db.WithContext(ctx).
		Order("total_points DESC").
		Order("last_rewarded_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, storageErr(err)
	}

	out := make([]*entities.HallOfFameEntry, 0, len(ms))
	for i := range ms {
		e := hofToEntity(&ms[i])
		e.Rank = i + 1
		out = append(out, e)
	}
	return out, nil
}

func hofToEntity(m *models.HallOfFameEntry) *entities.HallOfFameEntry {
	return &entities.HallOfFameEntry{
		ID:             m.ID,
		UserID:         m.UserID,
		DisplayName:    m.DisplayName,
		TotalPoints:    m.TotalPoints,
		Achievements:   decodeList(m.Achievements),
		LastRewardedAt: null.TimeFromPtr(m.LastRewardedAt),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
