package models

import (
	"time"

	"github.com/google/uuid"
)

type SiteContentItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SiteContentItem) TableName() string { return "site_content_items" }

type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Rating    int       `gorm:"not null"`
	Message   string    `gorm:"type:text;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Feedback) TableName() string { return "feedback" }

type WaitlistEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   string    `gorm:"type:varchar(100);not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Name        string    `gorm:"type:varchar(100)"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(50)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (WaitlistEntry) TableName() string { return "waitlist_entries" }
