package models

import (
	"time"

	"github.com/google/uuid"
)

// Tags is stored as a JSON-encoded text column.
type BlogPost struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content     string    `gorm:"type:text;not null"`
	Author      string    `gorm:"type:varchar(100);not null"`
	Tags        string    `gorm:"type:text"`
	IsPublished bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BlogPost) TableName() string { return "blog_posts" }
