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

type SiteContentHandler struct {
	repo     repositories.SiteContentRepository
	notifier *revalidate.Notifier
}

func NewSiteContentHandler(repo repositories.SiteContentRepository, notifier *revalidate.Notifier) *SiteContentHandler {
	return &SiteContentHandler{repo: repo, notifier: notifier}
}

// ListActive returns active banners, news and announcements.
// GET /api/v1/site-content
func (h *SiteContentHandler) ListActive(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), true)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// List returns all site content items.
// GET /api/v1/admin/site-content
func (h *SiteContentHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), false)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Get returns a single site content item.
// GET /api/v1/admin/site-content/:id
func (h *SiteContentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid site content ID"))
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Create creates a site content item.
// POST /api/v1/admin/site-content
func (h *SiteContentHandler) Create(c *gin.Context) {
	var input entities.CreateSiteContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.repo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/")
	response.Success(c, http.StatusCreated, item)
}

// Update partially updates a site content item.
// PATCH /api/v1/admin/site-content/:id
func (h *SiteContentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid site content ID"))
		return
	}

	var input entities.UpdateSiteContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.repo.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/")
	response.Success(c, http.StatusOK, item)
}

// Delete removes a site content item.
// DELETE /api/v1/admin/site-content/:id
func (h *SiteContentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid site content ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/")
	response.Success(c, http.StatusOK, gin.H{"message": "Site content deleted"})
}
