package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/domain/repositories"
	"mintfire.backend/internal/infrastructure/revalidate"
	"mintfire.backend/internal/interfaces/http/response"
)

type HallOfFameHandler struct {
	repo     repositories.HallOfFameRepository
	notifier *revalidate.Notifier
}

func NewHallOfFameHandler(repo repositories.HallOfFameRepository, notifier *revalidate.Notifier) *HallOfFameHandler {
	return &HallOfFameHandler{repo: repo, notifier: notifier}
}

// ListRanked returns the leaderboard in rank order. Ranks are computed
// here, not stored.
// GET /api/v1/hall-of-fame
func (h *HallOfFameHandler) ListRanked(c *gin.Context) {
	items, err := h.repo.ListRanked(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Get returns a single leaderboard entry.
// GET /api/v1/admin/hall-of-fame/:id
func (h *HallOfFameHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid hall of fame ID"))
		return
	}

	entry, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, entry)
}

// Create creates a leaderboard entry.
// POST /api/v1/admin/hall-of-fame
func (h *HallOfFameHandler) Create(c *gin.Context) {
	var input entities.CreateHallOfFameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	entry, err := h.repo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/hall-of-fame")
	response.Success(c, http.StatusCreated, entry)
}

// Update partially updates a leaderboard entry.
// PATCH /api/v1/admin/hall-of-fame/:id
func (h *HallOfFameHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid hall of fame ID"))
		return
	}

	var input entities.UpdateHallOfFameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	entry, err := h.repo.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/hall-of-fame")
	response.Success(c, http.StatusOK, entry)
}

// Award adds points to a contributor, creating the entry on first award.
// POST /api/v1/admin/hall-of-fame/award
func (h *HallOfFameHandler) Award(c *gin.Context) {
	var input entities.AwardPointsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	entry, err := h.repo.Award(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/hall-of-fame")
	response.Success(c, http.StatusOK, entry)
}

// Delete removes a leaderboard entry.
// DELETE /api/v1/admin/hall-of-fame/:id
func (h *HallOfFameHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid hall of fame ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/hall-of-fame")
	response.Success(c, http.StatusOK, gin.H{"message": "Hall of fame entry deleted"})
}
