package entities

import (
	"time"

	"github.com/google/uuid"
	domainerrors "mintfire.backend/internal/domain/errors"
)

// SiteContentType classifies a site content item
type SiteContentType string

const (
	SiteContentBanner       SiteContentType = "banner"
	SiteContentNews         SiteContentType = "news"
	SiteContentAnnouncement SiteContentType = "announcement"
)

func (t SiteContentType) Valid() bool {
	switch t {
	case SiteContentBanner, SiteContentNews, SiteContentAnnouncement:
		return true
	}
	return false
}

// SiteContentItem represents a banner, news item or announcement shown on
// public pages
type SiteContentItem struct {
	ID        uuid.UUID       `json:"id"`
	Type      SiteContentType `json:"type"`
	Title     string          `json:"title" validate:"required"`
	Body      string          `json:"body"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (c *SiteContentItem) Validate() error {
	fields := checkStruct(c)
	if !c.Type.Valid() {
		fields = append(fields, domainerrors.FieldError{Path: "type", Message: "must be one of banner, news, announcement"})
	}
	return finish(fields)
}

// CreateSiteContentInput is the create schema for site content
type CreateSiteContentInput struct {
	Type     SiteContentType `json:"type" validate:"required"`
	Title    string          `json:"title" validate:"required"`
	Body     string          `json:"body"`
	IsActive bool            `json:"isActive"`
}

func (i *CreateSiteContentInput) Validate() error {
	fields := checkStruct(i)
	if i.Type != "" && !i.Type.Valid() {
		fields = append(fields, domainerrors.FieldError{Path: "type", Message: "must be one of banner, news, announcement"})
	}
	return finish(fields)
}

// UpdateSiteContentInput is the partial update schema for site content
type UpdateSiteContentInput struct {
	Type     *SiteContentType `json:"type"`
	Title    *string          `json:"title" validate:"omitempty,min=1"`
	Body     *string          `json:"body"`
	IsActive *bool            `json:"isActive"`
}

func (i *UpdateSiteContentInput) Validate() error {
	fields := checkStruct(i)
	if i.Type != nil && !i.Type.Valid() {
		fields = append(fields, domainerrors.FieldError{Path: "type", Message: "must be one of banner, news, announcement"})
	}
	return finish(fields)
}
