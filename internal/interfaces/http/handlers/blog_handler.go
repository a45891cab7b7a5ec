package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/domain/repositories"
	"mintfire.backend/internal/infrastructure/revalidate"
	"mintfire.backend/internal/interfaces/http/response"
	"mintfire.backend/pkg/utils"
)

type BlogHandler struct {
	repo     repositories.BlogRepository
	notifier *revalidate.Notifier
}

func NewBlogHandler(repo repositories.BlogRepository, notifier *revalidate.Notifier) *BlogHandler {
	return &BlogHandler{repo: repo, notifier: notifier}
}

func blogPagination(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return utils.GetPaginationParams(page, limit)
}

// ListPublished returns published posts for public pages.
// GET /api/v1/blog
func (h *BlogHandler) ListPublished(c *gin.Context) {
	p := blogPagination(c)
	items, total, err := h.repo.List(c.Request.Context(), true, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// GetBySlug returns a published post by slug.
// GET /api/v1/blog/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !post.IsPublished {
		// Drafts are invisible on the public surface
		response.Error(c, domainerrors.NotFound("blog post not found"))
		return
	}
	response.Success(c, http.StatusOK, post)
}

// ListAdmin returns all posts, drafts included.
// GET /api/v1/admin/blog
func (h *BlogHandler) ListAdmin(c *gin.Context) {
	p := blogPagination(c)
	items, total, err := h.repo.List(c.Request.Context(), false, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// Get returns a single post by ID.
// GET /api/v1/admin/blog/:id
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid blog post ID"))
		return
	}

	post, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// Create creates a blog post.
// POST /api/v1/admin/blog
func (h *BlogHandler) Create(c *gin.Context) {
	var input entities.CreateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	post, err := h.repo.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/blog")
	response.Success(c, http.StatusCreated, post)
}

// Update partially updates a blog post.
// PATCH /api/v1/admin/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid blog post ID"))
		return
	}

	var input entities.UpdateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	post, err := h.repo.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/blog", "/blog/"+post.Slug)
	response.Success(c, http.StatusOK, post)
}

// Delete removes a blog post.
// DELETE /api/v1/admin/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid blog post ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), "/blog")
	response.Success(c, http.StatusOK, gin.H{"message": "Blog post deleted"})
}
