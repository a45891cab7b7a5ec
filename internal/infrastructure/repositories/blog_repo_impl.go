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
	"mintfire.backend/pkg/utils"
)

// BlogRepository implements blog post data operations
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create validates and persists a new blog post. Slugs are unique: a
// duplicate fails with ErrAlreadyExists before hitting the index.
func (r *BlogRepository) Create(ctx context.Context, input *entities.CreateBlogPostInput) (*entities.BlogPost, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := r.checkSlugFree(ctx, input.Slug, uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.BlogPost{
		ID:          uuid.New(),
		Title:       input.Title,
		Slug:        input.Slug,
		Content:     input.Content,
		Author:      input.Author,
		Tags:        encodeList(input.Tags),
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return blogPostToEntity(m), nil
}

// GetByID returns a blog post, re-validating the stored record
func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BlogPost, error) {
	var m models.BlogPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	e := blogPostToEntity(&m)
	if err := e.Validate(); err != nil {
		return nil, domainerrors.CorruptRecord(err)
	}
	return e, nil
}

// GetBySlug returns a blog post by its URL slug
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	var m models.BlogPost
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return blogPostToEntity(&m), nil
}

// Update merges a validated partial input onto the stored record
func (r *BlogRepository) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBlogPostInput) (*entities.BlogPost, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var m models.BlogPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}

	if input.Slug != nil && *input.Slug != m.Slug {
		if err := r.checkSlugFree(ctx, *input.Slug, id); err != nil {
			return nil, err
		}
		m.Slug = *input.Slug
	}
	if input.Title != nil {
		m.Title = *input.Title
	}
	if input.Content != nil {
		m.Content = *input.Content
	}
	if input.Author != nil {
		m.Author = *input.Author
	}
	if input.Tags != nil {
		m.Tags = encodeList(*input.Tags)
	}
	if input.IsPublished != nil {
		m.IsPublished = *input.IsPublished
	}
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, storageErr(err)
	}
	return blogPostToEntity(&m), nil
}

// Delete removes a blog post
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns blog posts newest first, optionally published only
func (r *BlogRepository) List(ctx context.Context, publishedOnly bool, p utils.PaginationParams) ([]*entities.BlogPost, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BlogPost{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, storageErr(err)
	}

	query = query.Order("created_at DESC")
	if p.Limit > 0 {
		query = query.Limit(p.Limit).Offset(p.CalculateOffset())
	}

	var ms []models.BlogPost
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, storageErr(err)
	}
	out := make([]*entities.BlogPost, 0, len(ms))
	for i := range ms {
		out = append(out, blogPostToEntity(&ms[i]))
	}
	return out, total, nil
}

func (r *BlogRepository) checkSlugFree(ctx context.Context, slug string, selfID uuid.UUID) error {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("slug = ?", slug)
	if selfID != uuid.Nil {
		query = query.Where("id <> ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return storageErr(err)
	}
	if count > 0 {
		return domainerrors.ErrAlreadyExists
	}
	return nil
}

func blogPostToEntity(m *models.BlogPost) *entities.BlogPost {
	return &entities.BlogPost{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Content:     m.Content,
		Author:      m.Author,
		Tags:        decodeList(m.Tags),
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
