package repositories

import (
	"context"

	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
)

// TeamMemberRepository defines team member data operations
type TeamMemberRepository interface {
	Create(ctx context.Context, input *entities.CreateMemberInput) (*entities.TeamMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateMemberInput) (*entities.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.TeamMember, error)
}

// FounderRepository defines founder data operations
type FounderRepository interface {
	Create(ctx context.Context, input *entities.CreateMemberInput) (*entities.Founder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Founder, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateMemberInput) (*entities.Founder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Founder, error)
}
