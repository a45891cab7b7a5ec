package repositories

import (
	"context"

	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
)

// AdminRepository defines admin credential operations
type AdminRepository interface {
	Create(ctx context.Context, input *entities.CreateAdminInput, passwordHash string) (*entities.AdminCredential, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminCredential, error)
	GetByEmail(ctx context.Context, email string) (*entities.AdminCredential, error)
}

// SuperActionRepository defines one-time lockout-bypass code operations
type SuperActionRepository interface {
	Create(ctx context.Context, codeHash string) (*entities.SuperActionCode, error)
	ListUnused(ctx context.Context) ([]*entities.SuperActionCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

// AuditRepository records privileged actions
type AuditRepository interface {
	Record(ctx context.Context, action, actorEmail, detail string) error
	List(ctx context.Context, limit int) ([]*entities.AuditEntry, error)
}
