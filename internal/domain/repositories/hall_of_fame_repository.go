package repositories

import (
	"context"

	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
)

// HallOfFameRepository defines leaderboard data operations. ListRanked
// orders by totalPoints descending (ties broken by earliest
// lastRewardedAt) and assigns ranks 1..n at read time.
type HallOfFameRepository interface {
	Create(ctx context.Context, input *entities.CreateHallOfFameInput) (*entities.HallOfFameEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.HallOfFameEntry, error)
	GetByUserID(ctx context.Context, userID string) (*entities.HallOfFameEntry, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateHallOfFameInput) (*entities.HallOfFameEntry, error)
	Award(ctx context.Context, input *entities.AwardPointsInput) (*entities.HallOfFameEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListRanked(ctx context.Context) ([]*entities.HallOfFameEntry, error)
}
