package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"mintfire.backend/internal/domain/repositories"
	"mintfire.backend/internal/interfaces/http/response"
)

// DashboardHandler aggregates counts for the admin dashboard landing
// page.
type DashboardHandler struct {
	bugRepo       repositories.BugReportRepository
	applicantRepo repositories.ApplicantRepository
}

func NewDashboardHandler(bugRepo repositories.BugReportRepository, applicantRepo repositories.ApplicantRepository) *DashboardHandler {
	return &DashboardHandler{bugRepo: bugRepo, applicantRepo: applicantRepo}
}

// Stats returns per-status counts for bug reports and applicants.
// GET /api/v1/admin/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	bugCounts, err := h.bugRepo.CountByStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	applicantCounts, err := h.applicantRepo.CountByStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bugReports": bugCounts,
		"applicants": applicantCounts,
	})
}
