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

type TeamMemberHandler struct {
	repo     repositories.TeamMemberRepository
	notifier *revalidate.Notifier
}

func NewTeamMemberHandler(repo repositories.TeamMemberRepository, notifier *revalidate.Notifier) *TeamMemberHandler {
	return &TeamMemberHandler{repo: repo, notifier: notifier}
}

// List returns all team members.
// GET /api/v1/team
func (h *TeamMemberHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Get returns a single team member.
// GET /api/v1/admin/team/:id
func (h *TeamMemberHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team member ID"))
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Create creates a team member.
// POST /api/v1/admin/team
func (h *TeamMemberHandler) Create(c *gin.Context) {
	var input entities.CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.repo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/team")
	response.Success(c, http.StatusCreated, item)
}

// Update partially updates a team member.
// PATCH /api/v1/admin/team/:id
func (h *TeamMemberHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team member ID"))
		return
	}

	var input entities.UpdateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.repo.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/team")
	response.Success(c, http.StatusOK, item)
}

// Delete removes a team member.
// DELETE /api/v1/admin/team/:id
func (h *TeamMemberHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team member ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/team")
	response.Success(c, http.StatusOK, gin.H{"message": "Team member deleted"})
}

// FounderHandler serves the founders collection. Same shape as team
// members but a separate store.
type FounderHandler struct {
	repo     repositories.FounderRepository
	notifier *revalidate.Notifier
}

func NewFounderHandler(repo repositories.FounderRepository, notifier *revalidate.Notifier) *FounderHandler {
	return &FounderHandler{repo: repo, notifier: notifier}
}

// List returns all founders.
// GET /api/v1/founders
func (h *FounderHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Get returns a single founder.
// GET /api/v1/admin/founders/:id
func (h *FounderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid founder ID"))
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Create creates a founder.
// POST /api/v1/admin/founders
func (h *FounderHandler) Create(c *gin.Context) {
	var input entities.CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.repo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/about")
	response.Success(c, http.StatusCreated, item)
}

// Update partially updates a founder.
// PATCH /api/v1/admin/founders/:id
func (h *FounderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid founder ID"))
		return
	}

	var input entities.UpdateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.repo.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/about")
	response.Success(c, http.StatusOK, item)
}

// Delete removes a founder.
// DELETE /api/v1/admin/founders/:id
func (h *FounderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid founder ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/about")
	response.Success(c, http.StatusOK, gin.H{"message": "Founder deleted"})
}
