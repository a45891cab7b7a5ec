package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "mintfire.backend/internal/domain/errors"
)

// AdminCredential represents a dashboard admin account. Only the bcrypt
// hash of the password is ever stored.
type AdminCredential struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (a *AdminCredential) Validate() error {
	return finish(checkStruct(a))
}

// CreateAdminInput is the admin provisioning schema. The confirmation
// check runs after the field checks so its error is reported last.
type CreateAdminInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func (i *CreateAdminInput) Validate() error {
	fields := checkStruct(i)
	if i.Password != "" && i.ConfirmPassword != "" && i.Password != i.ConfirmPassword {
		fields = append(fields, domainerrors.FieldError{Path: "confirmPassword", Message: "does not match password"})
	}
	return finish(fields)
}

// LoginInput is the admin login schema
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (i *LoginInput) Validate() error {
	return finish(checkStruct(i))
}

// SuperActionInput redeems a one-time high-privilege code to clear a
// login lockout
type SuperActionInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

func (i *SuperActionInput) Validate() error {
	return finish(checkStruct(i))
}

// SuperActionCode is a one-time lockout-bypass credential. Stored hashed;
// marked used on first successful redemption.
type SuperActionCode struct {
	ID        uuid.UUID `json:"id"`
	CodeHash  string    `json:"-"`
	Used      bool      `json:"used"`
	UsedAt    null.Time `json:"usedAt,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuditEntry records a privileged action for later review
type AuditEntry struct {
	ID         uuid.UUID `json:"id"`
	Action     string    `json:"action"`
	ActorEmail string    `json:"actorEmail"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuthSession is what a successful login returns to the handler layer
type AuthSession struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Admin     *AdminCredential `json:"admin"`
}
