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
	"mintfire.backend/pkg/utils"
)

// BugReportRepository implements bug report data operations
type BugReportRepository struct {
	db *gorm.DB
}

// NewBugReportRepository creates a new bug report repository
func NewBugReportRepository(db *gorm.DB) *BugReportRepository {
	return &BugReportRepository{db: db}
}

// Create validates a public submission and persists it as Pending
func (r *BugReportRepository) Create(ctx context.Context, input *entities.CreateBugReportInput) (*entities.BugReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.BugReport{
		ID:            uuid.New(),
		Description:   input.Description,
		PocGdriveLink: input.PocGdriveLink,
		Status:        string(entities.BugStatusPending),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return bugReportToEntity(m), nil
}

// GetByID returns a bug report, re-validating the stored record
func (r *BugReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BugReport, error) {
	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	e := bugReportToEntity(m)
	if err := e.Validate(); err != nil {
		return nil, domainerrors.CorruptRecord(err)
	}
	return e, nil
}

// Update merges a validated partial input onto the stored record
func (r *BugReportRepository) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBugReportInput) (*entities.BugReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		m.Description = *input.Description
	}
	if input.PocGdriveLink != nil {
		m.PocGdriveLink = *input.PocGdriveLink
	}
	if input.AdminNotes != nil {
		m.AdminNotes = input.AdminNotes
	}
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return bugReportToEntity(m), nil
}

// UpdateStatus sets the triage status. Moving to Rewarded stamps
// rewarded_at. No transition table: any status may follow any other.
func (r *BugReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateBugReportStatusInput) (*entities.BugReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Status = string(input.Status)
	if input.AdminNotes != nil {
		m.AdminNotes = input.AdminNotes
	}
	if input.Status == entities.BugStatusRewarded && m.RewardedAt == nil {
		now := time.Now()
		m.RewardedAt = &now
	}
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, storageErr(err)
	}
	return bugReportToEntity(m), nil
}

// Delete removes a bug report
func (r *BugReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BugReport{}, "id = ?", id)
	if result.Error != nil {
		return storageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns bug reports newest first, optionally filtered by status
func (r *BugReportRepository) List(ctx context.Context, status entities.BugReportStatus, p utils.PaginationParams) ([]*entities.BugReport, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BugReport{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, storageErr(err)
	}

	query = query.Order("created_at DESC")
	if p.Limit > 0 {
		query = query.Limit(p.Limit).Offset(p.CalculateOffset())
	}

	var ms []models.BugReport
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, storageErr(err)
	}
	out := make([]*entities.BugReport, 0, len(ms))
	for i := range ms {
		out = append(out, bugReportToEntity(&ms[i]))
	}
	return out, total, nil
}

// CountByStatus returns report counts grouped by status
func (r *BugReportRepository) CountByStatus(ctx context.Context) (map[entities.BugReportStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&models.BugReport{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, storageErr(err)
	}

	counts := make(map[entities.BugReportStatus]int64, len(rows))
	for _, row := range rows {
		counts[entities.BugReportStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *BugReportRepository) find(ctx context.Context, id uuid.UUID) (*models.BugReport, error) {
	var m models.BugReport
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &m, nil
}

func bugReportToEntity(m *models.BugReport) *entities.BugReport {
	return &entities.BugReport{
		ID:            m.ID,
		Description:   m.Description,
		PocGdriveLink: m.PocGdriveLink,
		Status:        entities.BugReportStatus(m.Status),
		AdminNotes:    null.StringFromPtr(m.AdminNotes),
		RewardedAt:    null.TimeFromPtr(m.RewardedAt),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
