package entities

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry represents a signup for an unreleased product
type WaitlistEntry struct {
	ID          uuid.UUID `json:"id"`
	ProductID   string    `json:"productId" validate:"required"`
	ProductName string    `json:"productName" validate:"required"`
	Name        string    `json:"name"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (w *WaitlistEntry) Validate() error {
	return finish(checkStruct(w))
}

// CreateWaitlistInput is the public signup schema
type CreateWaitlistInput struct {
	ProductID   string `json:"productId" validate:"required"`
	ProductName string `json:"productName" validate:"required"`
	Name        string `json:"name"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
}

func (i *CreateWaitlistInput) Validate() error {
	return finish(checkStruct(i))
}
