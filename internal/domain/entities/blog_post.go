package entities

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	domainerrors "mintfire.backend/internal/domain/errors"
)

// slugPattern is the URL-safe slug form: lowercase words joined by single
// hyphens, no leading or trailing hyphen.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

const slugMessage = "must contain only lowercase letters, digits and single hyphens"

// BlogPost represents a blog article
type BlogPost struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Slug        string    `json:"slug" validate:"required"`
	Content     string    `json:"content" validate:"required"`
	Author      string    `json:"author" validate:"required"`
	Tags        []string  `json:"tags"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *BlogPost) Validate() error {
	fields := checkStruct(p)
	if p.Slug != "" && !slugPattern.MatchString(p.Slug) {
		fields = append(fields, domainerrors.FieldError{Path: "slug", Message: slugMessage})
	}
	return finish(fields)
}

// CreateBlogPostInput is the create schema for blog posts
type CreateBlogPostInput struct {
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Author      string   `json:"author" validate:"required"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
}

func (i *CreateBlogPostInput) Validate() error {
	fields := checkStruct(i)
	if i.Slug != "" && !slugPattern.MatchString(i.Slug) {
		fields = append(fields, domainerrors.FieldError{Path: "slug", Message: slugMessage})
	}
	return finish(fields)
}

// UpdateBlogPostInput is the partial update schema for blog posts
type UpdateBlogPostInput struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Slug        *string   `json:"slug" validate:"omitempty,min=1"`
	Content     *string   `json:"content" validate:"omitempty,min=1"`
	Author      *string   `json:"author" validate:"omitempty,min=1"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"isPublished"`
}

func (i *UpdateBlogPostInput) Validate() error {
	fields := checkStruct(i)
	if i.Slug != nil && !slugPattern.MatchString(*i.Slug) {
		fields = append(fields, domainerrors.FieldError{Path: "slug", Message: slugMessage})
	}
	return finish(fields)
}
