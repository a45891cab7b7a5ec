package repositories

import (
	"context"

	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
)

// SiteContentRepository defines site content data operations
type SiteContentRepository interface {
	Create(ctx context.Context, input *entities.CreateSiteContentInput) (*entities.SiteContentItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SiteContentItem, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateSiteContentInput) (*entities.SiteContentItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]*entities.SiteContentItem, error)
}
