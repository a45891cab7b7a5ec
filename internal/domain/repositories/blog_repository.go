package repositories

import (
	"context"

	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
	"mintfire.backend/pkg/utils"
)

// BlogRepository defines blog post data operations
type BlogRepository interface {
	Create(ctx context.Context, input *entities.CreateBlogPostInput) (*entities.BlogPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBlogPostInput) (*entities.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, publishedOnly bool, p utils.PaginationParams) ([]*entities.BlogPost, int64, error)
}
