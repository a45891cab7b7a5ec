package repositories

import (
	"context"

	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
	"mintfire.backend/pkg/utils"
)

// BugReportRepository defines bug report data operations
type BugReportRepository interface {
	Create(ctx context.Context, input *entities.CreateBugReportInput) (*entities.BugReport, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BugReport, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBugReportInput) (*entities.BugReport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateBugReportStatusInput) (*entities.BugReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status entities.BugReportStatus, p utils.PaginationParams) ([]*entities.BugReport, int64, error)
	CountByStatus(ctx context.Context) (map[entities.BugReportStatus]int64, error)
}
