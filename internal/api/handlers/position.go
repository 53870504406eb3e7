package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"performance-portal-backend/internal/service"
)

// PositionHandler handles HTTP requests for positions
type PositionHandler struct {
	positionService service.PositionServiceInterface
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(positionService service.PositionServiceInterface) *PositionHandler {
	return &PositionHandler{positionService: positionService}
}

// Create handles POST /positions
// @Summary Create a new position
// @Description Create a position in a company, optionally under a parent position.
// @Description Omitting parent_id creates a head position (a new tree root).
// @Tags positions
// @Accept json
// @Produce json
// @Param position body service.CreatePositionRequest true "Position data"
// @Success 201 {object} service.PositionResponse "Successfully created position"
// @Failure 400 {object} ErrorResponse "Invalid request body or parent in another company"
// @Failure 404 {object} ErrorResponse "Company or parent position not found"
// @Router /positions [post]
func (h *PositionHandler) Create(c *gin.Context) {
	var req service.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position, err := h.positionService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, position)
}

// GetByID handles GET /positions/:id
// @Summary Get a position by ID
// @Tags positions
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} service.PositionResponse "Position details"
// @Failure 404 {object} ErrorResponse "Position not found"
// @Router /positions/{id} [get]
func (h *PositionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	position, err := h.positionService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, position)
}

// UpdateTitle handles PATCH /positions/:id/title
// @Summary Rename a position
// @Tags positions
// @Accept json
// @Produce json
// @Param id path string true "Position ID"
// @Param title body service.UpdateTitleRequest true "New title"
// @Success 200 {object} service.PositionResponse "Renamed position"
// @Failure 404 {object} ErrorResponse "Position not found"
// @Router /positions/{id}/title [patch]
func (h *PositionHandler) UpdateTitle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	var req service.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position, err := h.positionService.UpdateTitle(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, position)
}

// UpdateParent handles PATCH /positions/:id/parent
// @Summary Move a position to a new parent
// @Description Reparent a position. Mode "with-subordinates" moves the whole
// @Description subtree; "without-subordinates" promotes direct children to the
// @Description old parent first. A null new_parent_id makes it a head position.
// @Tags positions
// @Accept json
// @Produce json
// @Param id path string true "Position ID"
// @Param move body service.UpdateParentRequest true "New parent and mode"
// @Success 200 {object} service.PositionResponse "Moved position"
// @Failure 400 {object} ErrorResponse "Cycle, self-parent, cross-company parent or bad mode"
// @Failure 404 {object} ErrorResponse "Position or parent not found"
// @Router /positions/{id}/parent [patch]
func (h *PositionHandler) UpdateParent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	var req service.UpdateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position, err := h.positionService.UpdateParent(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, position)
}

// Delete handles DELETE /positions/:id
// @Summary Soft-delete a position
// @Description Soft-delete a position. Historical assignments keep referring
// @Description to it; it is excluded from current reads.
// @Tags positions
// @Produce json
// @Param id path string true "Position ID"
// @Success 204 "Position deleted"
// @Failure 404 {object} ErrorResponse "Position not found"
// @Router /positions/{id} [delete]
func (h *PositionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	if err := h.positionService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
