package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Role        string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`
	GithubURL   string    `gorm:"type:text"`
	TwitterURL  string    `gorm:"type:text"`
	LinkedInURL string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TeamMember) TableName() string { return "team_members" }

type Founder struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Role        string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`
	GithubURL   string    `gorm:"type:text"`
	TwitterURL  string    `gorm:"type:text"`
	LinkedInURL string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Founder) TableName() string { return "founders" }
