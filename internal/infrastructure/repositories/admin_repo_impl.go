package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/infrastructure/models"
)

// AdminRepository implements admin credential operations
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create validates the provisioning input and persists the credential.
// The caller hashes the password; plaintext never reaches this layer.
func (r *AdminRepository) Create(ctx context.Context, input *entities.CreateAdminInput, passwordHash string) (*entities.AdminCredential, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, err := r.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	m := &models.AdminCredential{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return adminToEntity(m), nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminCredential, error) {
	var m models.AdminCredential
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return adminToEntity(&m), nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entities.AdminCredential, error) {
	var m models.AdminCredential
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return adminToEntity(&m), nil
}

func adminToEntity(m *models.AdminCredential) *entities.AdminCredential {
	return &entities.AdminCredential{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SuperActionRepository implements one-time lockout-bypass code storage
type SuperActionRepository struct {
	db *gorm.DB
}

// NewSuperActionRepository creates a new super action repository
func NewSuperActionRepository(db *gorm.DB) *SuperActionRepository {
	return &SuperActionRepository{db: db}
}

func (r *SuperActionRepository) Create(ctx context.Context, codeHash string) (*entities.SuperActionCode, error) {
	m := &models.SuperActionCode{
		ID:        uuid.New(),
		CodeHash:  codeHash,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return superActionToEntity(m), nil
}

func (r *SuperActionRepository) ListUnused(ctx context.Context) ([]*entities.SuperActionCode, error) {
	var ms []models.SuperActionCode
	if err := r.db.WithContext(ctx).Where("used = ?", false).Find(&ms).Error; err != nil {
		return nil, storageErr(err)
	}
	out := make([]*entities.SuperActionCode, 0, len(ms))
	for i := range ms {
		out = append(out, superActionToEntity(&ms[i]))
	}
	return out, nil
}

// MarkUsed burns a code. The used guard in the WHERE clause makes
// redemption first-wins under concurrent attempts.
func (r *SuperActionRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.SuperActionCode{}).
		Where("id = ? AND used = ?", id, false).
		Updates(map[string]interface{}{"used": true, "used_at": time.Now()})
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func superActionToEntity(m *models.SuperActionCode) *entities.SuperActionCode {
	return &entities.SuperActionCode{
		ID:        m.ID,
		CodeHash:  m.CodeHash,
		Used:      m.Used,
		UsedAt:    null.TimeFromPtr(m.UsedAt),
		CreatedAt: m.CreatedAt,
	}
}

// AuditRepository persists privileged-action audit entries
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, action, actorEmail, detail string) error {
	m := &models.AuditEntry{
		ID:         uuid.New(),
		Action:     action,
		ActorEmail: actorEmail,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, limit int) ([]*entities.AuditEntry, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.AuditEntry
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err)
	}
	out := make([]*entities.AuditEntry, 0, len(ms))
	for i := range ms {
		out = append(out, &entities.AuditEntry{
			ID:         ms[i].ID,
			Action:     ms[i].Action,
			ActorEmail: ms[i].ActorEmail,
			Detail:     ms[i].Detail,
			CreatedAt:  ms[i].CreatedAt,
		})
	}
	return out, nil
}
