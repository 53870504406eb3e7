package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"performance-portal-backend/internal/service"
)

// PostHandler handles HTTP requests for posts (job grades)
type PostHandler struct {
	postService service.PostServiceInterface
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService service.PostServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create handles POST /posts
// @Summary Create a new post
// @Description Create a new post (job grade) in a company
// @Tags posts
// @Accept json
// @Produce json
// @Param post body service.CreatePostRequest true "Post data"
// @Success 201 {object} service.PostResponse "Successfully created post"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 409 {object} ErrorResponse "Post already exists"
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetByID handles GET /posts/:id
// @Summary Get a post by ID
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} service.PostResponse "Post details"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Router /posts/{id} [get]
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ID"})
		return
	}

	post, err := h.postService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListByCompany handles GET /companies/:id/posts
// @Summary List posts of a company
// @Tags posts
// @Produce json
// @Param id path string true "Company ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PostListResponse "Paginated posts"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Router /companies/{id}/posts [get]
func (h *PostHandler) ListByCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	page, pageSize := parsePagination(c)

	posts, err := h.postService.GetByCompany(companyID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Update handles PUT /posts/:id
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body service.UpdatePostRequest true "Post data"
// @Success 200 {object} service.PostResponse "Updated post"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Router /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ID"})
		return
	}

	var req service.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /posts/:id
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 204 "Post deleted"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ID"})
		return
	}

	if err := h.postService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
