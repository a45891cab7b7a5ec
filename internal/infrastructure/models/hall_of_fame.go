package models

import (
	"time"

	"github.com/google/uuid"
)

// Achievements is stored as a JSON-encoded text column. Rank is derived
// at read time and has no column.
type HallOfFameEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName    string    `gorm:"type:varchar(100);not null"`
	TotalPoints    int       `gorm:"not null;default:0"`
	Achievements   string    `gorm:"type:text"`
	LastRewardedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (HallOfFameEntry) TableName() string { return "hall_of_fame_entries" }
