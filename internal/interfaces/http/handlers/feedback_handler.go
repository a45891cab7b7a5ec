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

type FeedbackHandler struct {
	repo repositories.FeedbackRepository
}

func NewFeedbackHandler(repo repositories.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{repo: repo}
}

// Submit accepts public visitor feedback.
// POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var input entities.CreateFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	fb, err := h.repo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, fb)
}

// List returns all feedback for review.
// GET /api/v1/admin/feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Get returns a single feedback entry.
// GET /api/v1/admin/feedback/:id
func (h *FeedbackHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid feedback ID"))
		return
	}

	fb, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, fb)
}

// Delete removes a feedback entry.
// DELETE /api/v1/admin/feedback/:id
func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid feedback ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Feedback deleted"})
}
