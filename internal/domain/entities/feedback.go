package entities

import (
	"time"

	"github.com/google/uuid"
)

// Feedback represents a visitor feedback submission
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Message   string    `json:"message" validate:"required,min=10"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *Feedback) Validate() error {
	return finish(checkStruct(f))
}

// CreateFeedbackInput is the public submission schema
type CreateFeedbackInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Message string `json:"message" validate:"required,min=10"`
	Name    string `json:"name"`
}

func (i *CreateFeedbackInput) Validate() error {
	return finish(checkStruct(i))
}
