package entities

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember represents a person on the public team page
type TeamMember struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Role        string    `json:"role" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	GithubURL   string    `json:"githubUrl,omitempty" validate:"omitempty,url"`
	TwitterURL  string    `json:"twitterUrl,omitempty" validate:"omitempty,url"`
	LinkedInURL string    `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate re-checks a stored record against the schema
func (m *TeamMember) Validate() error {
	return finish(checkStruct(m))
}

// Founder represents a company founder. Founders live in their own
// collection; the shape mirrors TeamMember.
type Founder struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Role        string    `json:"role" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	GithubURL   string    `json:"githubUrl,omitempty" validate:"omitempty,url"`
	TwitterURL  string    `json:"twitterUrl,omitempty" validate:"omitempty,url"`
	LinkedInURL string    `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (f *Founder) Validate() error {
	return finish(checkStruct(f))
}

// CreateMemberInput is the create schema shared by team members and
// founders (identifier and timestamps are store-generated).
type CreateMemberInput struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	GithubURL   string `json:"githubUrl" validate:"omitempty,url"`
	TwitterURL  string `json:"twitterUrl" validate:"omitempty,url"`
	LinkedInURL string `json:"linkedinUrl" validate:"omitempty,url"`
}

func (i *CreateMemberInput) Validate() error {
	return finish(checkStruct(i))
}

// UpdateMemberInput is the partial update schema; nil fields are left
// unchanged by the store.
type UpdateMemberInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Role        *string `json:"role" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	GithubURL   *string `json:"githubUrl" validate:"omitempty,url"`
	TwitterURL  *string `json:"twitterUrl" validate:"omitempty,url"`
	LinkedInURL *string `json:"linkedinUrl" validate:"omitempty,url"`
}

func (i *UpdateMemberInput) Validate() error {
	return finish(checkStruct(i))
}
