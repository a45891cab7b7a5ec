package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// HallOfFameEntry represents a contributor on the points leaderboard.
// Rank is derived at read time from totalPoints ordering and is never
// stored.
type HallOfFameEntry struct {
	ID             uuid.UUID `json:"id"`
	UserID         string    `json:"userId" validate:"required"`
	DisplayName    string    `json:"displayName" validate:"required"`
	TotalPoints    int       `json:"totalPoints" validate:"gte=0"`
	Achievements   []string  `json:"achievements"`
	LastRewardedAt null.Time `json:"lastRewardedAt,omitempty"`
	Rank           int       `json:"rank"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (e *HallOfFameEntry) Validate() error {
	return finish(checkStruct(e))
}

// CreateHallOfFameInput is the create schema for leaderboard entries
type CreateHallOfFameInput struct {
	UserID       string   `json:"userId" validate:"required"`
	DisplayName  string   `json:"displayName" validate:"required"`
	TotalPoints  int      `json:"totalPoints" validate:"gte=0"`
	Achievements []string `json:"achievements"`
}

func (i *CreateHallOfFameInput) Validate() error {
	return finish(checkStruct(i))
}

// UpdateHallOfFameInput is the partial update schema for leaderboard
// entries
type UpdateHallOfFameInput struct {
	DisplayName  *string   `json:"displayName" validate:"omitempty,min=1"`
	TotalPoints  *int      `json:"totalPoints" validate:"omitempty,gte=0"`
	Achievements *[]string `json:"achievements"`
}

func (i *UpdateHallOfFameInput) Validate() error {
	return finish(checkStruct(i))
}

// AwardPointsInput records a point award for a contributor, creating the
// leaderboard entry when it does not exist yet
type AwardPointsInput struct {
	UserID      string `json:"userId" validate:"required"`
	DisplayName string `json:"displayName" validate:"required"`
	Points      int    `json:"points" validate:"required,gt=0"`
	Achievement string `json:"achievement"`
}

func (i *AwardPointsInput) Validate() error {
	return finish(checkStruct(i))
}
