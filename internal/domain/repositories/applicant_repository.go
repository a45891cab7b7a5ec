package repositories

import (
	"context"

	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
)

// ApplicantRepository defines applicant data operations
type ApplicantRepository interface {
	Create(ctx context.Context, input *entities.CreateApplicantInput) (*entities.Applicant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Applicant, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateApplicantInput) (*entities.Applicant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateApplicantStatusInput) (*entities.Applicant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status entities.ApplicantStatus) ([]*entities.Applicant, error)
	CountByStatus(ctx context.Context) (map[entities.ApplicantStatus]int64, error)
}
