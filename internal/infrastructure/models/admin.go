package models

import (
	"time"

	"github.com/google/uuid"
)

type AdminCredential struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AdminCredential) TableName() string { return "admin_credentials" }

type SuperActionCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	Used      bool      `gorm:"not null;default:false"`
	UsedAt    *time.Time
	CreatedAt time.Time
}

func (SuperActionCode) TableName() string { return "super_action_codes" }

type AuditEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action     string    `gorm:"type:varchar(100);not null"`
	ActorEmail string    `gorm:"type:varchar(255);not null"`
	Detail     string    `gorm:"type:text"`
	CreatedAt  time.Time
}

func (AuditEntry) TableName() string { return "audit_entries" }
