package models

import (
	"time"

	"github.com/google/uuid"
)

type BugReport struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description   string    `gorm:"type:text;not null"`
	PocGdriveLink string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:varchar(50);not null;default:'Pending'"`
	AdminNotes    *string   `gorm:"type:text"`
	RewardedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (BugReport) TableName() string { return "bug_reports" }

type Applicant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ResumeLink  string    `gorm:"type:text;not null"`
	GithubURL   string    `gorm:"type:text;not null"`
	LinkedInURL string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(50);not null;default:'Pending'"`
	AdminNotes  *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Applicant) TableName() string { return "applicants" }
