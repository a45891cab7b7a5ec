package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/domain/repositories"
	"mintfire.backend/internal/interfaces/http/response"
)

type ApplicantHandler struct {
	repo repositories.ApplicantRepository
}

func NewApplicantHandler(repo repositories.ApplicantRepository) *ApplicantHandler {
	return &ApplicantHandler{repo: repo}
}

// Apply accepts a public job application.
// POST /api/v1/applicants
func (h *ApplicantHandler) Apply(c *gin.Context) {
	var input entities.CreateApplicantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	applicant, err := h.repo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, applicant)
}

// List returns applicants, optionally filtered by pipeline stage.
// GET /api/v1/admin/applicants
func (h *ApplicantHandler) List(c *gin.Context) {
	status := entities.ApplicantStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		response.Error(c, domainerrors.BadRequest("invalid status filter"))
		return
	}

	items, err := h.repo.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Get returns a single applicant.
// GET /api/v1/admin/applicants/:id
func (h *ApplicantHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid applicant ID"))
		return
	}

	applicant, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, applicant)
}

// Update partially updates an applicant's details.
// PATCH /api/v1/admin/applicants/:id
func (h *ApplicantHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid applicant ID"))
		return
	}

	var input entities.UpdateApplicantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	applicant, err := h.repo.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, applicant)
}

// UpdateStatus moves an applicant through the hiring pipeline.
// PATCH /api/v1/admin/applicants/:id/status
func (h *ApplicantHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid applicant ID"))
		return
	}

	var input entities.UpdateApplicantStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	applicant, err := h.repo.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, applicant)
}

// Delete removes an applicant.
// DELETE /api/v1/admin/applicants/:id
func (h *ApplicantHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid applicant ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Applicant deleted"})
}
