package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "mintfire.backend/internal/domain/errors"
)

// ApplicantStatus represents an applicant's hiring pipeline stage
type ApplicantStatus string

const (
	ApplicantStatusPending       ApplicantStatus = "Pending"
	ApplicantStatusReviewed      ApplicantStatus = "Reviewed"
	ApplicantStatusShortlisted   ApplicantStatus = "Shortlisted"
	ApplicantStatusInterviewing  ApplicantStatus = "Interviewing"
	ApplicantStatusOfferExtended ApplicantStatus = "Offer Extended"
	ApplicantStatusHired         ApplicantStatus = "Hired"
	ApplicantStatusRejected      ApplicantStatus = "Rejected"
	ApplicantStatusOnHold        ApplicantStatus = "On Hold"
)

func (s ApplicantStatus) Valid() bool {
	switch s {
	case ApplicantStatusPending, ApplicantStatusReviewed, ApplicantStatusShortlisted,
		ApplicantStatusInterviewing, ApplicantStatusOfferExtended, ApplicantStatusHired,
		ApplicantStatusRejected, ApplicantStatusOnHold:
		return true
	}
	return false
}

// Applicant represents a job applicant
type Applicant struct {
	ID          uuid.UUID       `json:"id"`
	ResumeLink  string          `json:"resumeLink" validate:"required,url"`
	GithubURL   string          `json:"githubUrl" validate:"required,url"`
	LinkedInURL string          `json:"linkedinUrl" validate:"required,url"`
	Status      ApplicantStatus `json:"status"`
	AdminNotes  null.String     `json:"adminNotes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (a *Applicant) Validate() error {
	fields := checkStruct(a)
	if !a.Status.Valid() {
		fields = append(fields, domainerrors.FieldError{Path: "status", Message: "is not a valid applicant status"})
	}
	return finish(fields)
}

// CreateApplicantInput is the public application schema
type CreateApplicantInput struct {
	ResumeLink  string `json:"resumeLink" validate:"required,url"`
	GithubURL   string `json:"githubUrl" validate:"required,url"`
	LinkedInURL string `json:"linkedinUrl" validate:"required,url"`
}

func (i *CreateApplicantInput) Validate() error {
	return finish(checkStruct(i))
}

// UpdateApplicantInput is the admin partial update schema
type UpdateApplicantInput struct {
	ResumeLink  *string `json:"resumeLink" validate:"omitempty,url"`
	GithubURL   *string `json:"githubUrl" validate:"omitempty,url"`
	LinkedInURL *string `json:"linkedinUrl" validate:"omitempty,url"`
	AdminNotes  *string `json:"adminNotes"`
}

func (i *UpdateApplicantInput) Validate() error {
	return finish(checkStruct(i))
}

// UpdateApplicantStatusInput moves an applicant through the pipeline
type UpdateApplicantStatusInput struct {
	Status     ApplicantStatus `json:"status" validate:"required"`
	AdminNotes *string         `json:"adminNotes"`
}

func (i *UpdateApplicantStatusInput) Validate() error {
	fields := checkStruct(i)
	if i.Status != "" && !i.Status.Valid() {
		fields = append(fields, domainerrors.FieldError{Path: "status", Message: "is not a valid applicant status"})
	}
	return finish(fields)
}
