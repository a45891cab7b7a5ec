package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "mintfire.backend/internal/domain/errors"
)

// BugReportStatus represents the triage state of a bug report
type BugReportStatus string

const (
	BugStatusPending       BugReportStatus = "Pending"
	BugStatusInvestigating BugReportStatus = "Investigating"
	BugStatusVerified      BugReportStatus = "Verified"
	BugStatusInvalid       BugReportStatus = "Invalid"
	BugStatusDuplicate     BugReportStatus = "Duplicate"
	BugStatusFixed         BugReportStatus = "Fixed"
	BugStatusWontFix       BugReportStatus = "WontFix"
	BugStatusRewarded      BugReportStatus = "Rewarded"
)

// Valid reports enum membership. Transitions are unconstrained: an admin
// may move a report from any status to any other.
func (s BugReportStatus) Valid() bool {
	switch s {
	case BugStatusPending, BugStatusInvestigating, BugStatusVerified,
		BugStatusInvalid, BugStatusDuplicate, BugStatusFixed,
		BugStatusWontFix, BugStatusRewarded:
		return true
	}
	return false
}

// BugReport represents an externally submitted vulnerability report
type BugReport struct {
	ID            uuid.UUID       `json:"id"`
	Description   string          `json:"description" validate:"required,min=20"`
	PocGdriveLink string          `json:"pocGdriveLink" validate:"required,url"`
	Status        BugReportStatus `json:"status"`
	AdminNotes    null.String     `json:"adminNotes,omitempty"`
	RewardedAt    null.Time       `json:"rewardedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (r *BugReport) Validate() error {
	fields := checkStruct(r)
	if !r.Status.Valid() {
		fields = append(fields, domainerrors.FieldError{Path: "status", Message: "is not a valid bug report status"})
	}
	return finish(fields)
}

// CreateBugReportInput is the public submission schema
type CreateBugReportInput struct {
	Description   string `json:"description" validate:"required,min=20"`
	PocGdriveLink string `json:"pocGdriveLink" validate:"required,url"`
}

func (i *CreateBugReportInput) Validate() error {
	return finish(checkStruct(i))
}

// UpdateBugReportInput is the admin partial update schema
type UpdateBugReportInput struct {
	Description   *string `json:"description" validate:"omitempty,min=20"`
	PocGdriveLink *string `json:"pocGdriveLink" validate:"omitempty,url"`
	AdminNotes    *string `json:"adminNotes"`
}

func (i *UpdateBugReportInput) Validate() error {
	return finish(checkStruct(i))
}

// UpdateBugReportStatusInput moves a report through the triage pipeline
type UpdateBugReportStatusInput struct {
	Status     BugReportStatus `json:"status" validate:"required"`
	AdminNotes *string         `json:"adminNotes"`
}

func (i *UpdateBugReportStatusInput) Validate() error {
	fields := checkStruct(i)
	if i.Status != "" && !i.Status.Valid() {
		fields = append(fields, domainerrors.FieldError{Path: "status", Message: "is not a valid bug report status"})
	}
	return finish(fields)
}
