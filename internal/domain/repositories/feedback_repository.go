package repositories

import (
	"context"

	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
)

// FeedbackRepository defines feedback data operations
type FeedbackRepository interface {
	Create(ctx context.Context, input *entities.CreateFeedbackInput) (*entities.Feedback, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Feedback, error)
}

// WaitlistRepository defines waitlist data operations
type WaitlistRepository interface {
	Create(ctx context.Context, input *entities.CreateWaitlistInput) (*entities.WaitlistEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.WaitlistEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, productID string) ([]*entities.WaitlistEntry, error)
}
