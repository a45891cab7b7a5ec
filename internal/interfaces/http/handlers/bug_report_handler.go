package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/domain/repositories"
	"mintfire.backend/internal/interfaces/http/response"
	"mintfire.backend/pkg/utils"
)

type BugReportHandler struct {
	repo repositories.BugReportRepository
}

func NewBugReportHandler(repo repositories.BugReportRepository) *BugReportHandler {
	return &BugReportHandler{repo: repo}
}

// Submit accepts a public vulnerability report.
// POST /api/v1/bug-reports
func (h *BugReportHandler) Submit(c *gin.Context) {
	var input entities.CreateBugReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	report, err := h.repo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, report)
}

// List returns reports for triage, optionally filtered by status.
// GET /api/v1/admin/bug-reports
func (h *BugReportHandler) List(c *gin.Context) {
	status := entities.BugReportStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		response.Error(c, domainerrors.BadRequest("invalid status filter"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	p := utils.GetPaginationParams(page, limit)

	items, total, err := h.repo.List(c.Request.Context(), status, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// Get returns a single report.
// GET /api/v1/admin/bug-reports/:id
func (h *BugReportHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid bug report ID"))
		return
	}

	report, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

// Update partially updates a report's content fields.
// PATCH /api/v1/admin/bug-reports/:id
func (h *BugReportHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid bug report ID"))
		return
	}

	var input entities.UpdateBugReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	report, err := h.repo.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

// UpdateStatus moves a report through the triage pipeline.
// PATCH /api/v1/admin/bug-reports/:id/status
func (h *BugReportHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid bug report ID"))
		return
	}

	var input entities.UpdateBugReportStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	report, err := h.repo.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

// Delete removes a report.
// DELETE /api/v1/admin/bug-reports/:id
func (h *BugReportHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid bug report ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Bug report deleted"})
}
