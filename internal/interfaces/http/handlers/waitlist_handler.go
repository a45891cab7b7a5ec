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

type WaitlistHandler struct {
	repo repositories.WaitlistRepository
}

func NewWaitlistHandler(repo repositories.WaitlistRepository) *WaitlistHandler {
	return &WaitlistHandler{repo: repo}
}

// Join accepts a public waitlist signup.
// POST /api/v1/waitlist
func (h *WaitlistHandler) Join(c *gin.Context) {
	var input entities.CreateWaitlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	entry, err := h.repo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, entry)
}

// List returns waitlist entries, optionally scoped to one product.
// GET /api/v1/admin/waitlist
func (h *WaitlistHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), c.Query("productId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Get returns a single waitlist entry.
// GET /api/v1/admin/waitlist/:id
func (h *WaitlistHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid waitlist entry ID"))
		return
	}

	entry, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, entry)
}

// Delete removes a waitlist entry.
// DELETE /api/v1/admin/waitlist/:id
func (h *WaitlistHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid waitlist entry ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Waitlist entry deleted"})
}
