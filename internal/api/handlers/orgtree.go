package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"performance-portal-backend/internal/auth"
	"performance-portal-backend/internal/service"
)

// OrgTreeHandler handles HTTP requests for hierarchy reads
type OrgTreeHandler struct {
	orgTreeService service.OrgTreeServiceInterface
}

// NewOrgTreeHandler creates a new org-tree handler
func NewOrgTreeHandler(orgTreeService service.OrgTreeServiceInterface) *OrgTreeHandler {
	return &OrgTreeHandler{orgTreeService: orgTreeService}
}

// Subordinates handles GET /positions/:id/subordinates
// @Summary List all subordinate positions
// @Description Every position in the subtree below the given one, with its
// @Description level relative to the root. The root itself is excluded.
// @Tags hierarchy
// @Produce json
// @Param id path string true "Position ID"
// @Param include_deleted query bool false "Include soft-deleted positions" default(false)
// @Success 200 {array} hierarchy.Node "Subordinate positions"
// @Failure 404 {object} ErrorResponse "Position not found"
// @Router /positions/{id}/subordinates [get]
func (h *OrgTreeHandler) Subordinates(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	includeDeleted := c.Query("include_deleted") == "true"

	nodes, err := h.orgTreeService.Subordinates(positionID, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nodes)
}

// Reports handles GET /employees/:id/reports
// @Summary List currently staffed positions under a manager
// @Description Flat list of the positions below the manager's current position
// @Description that have an occupant today. Vacant positions are omitted but
// @Description their subtrees are still traversed.
// @Tags hierarchy
// @Produce json
// @Param id path string true "Manager employee ID"
// @Success 200 {array} hierarchy.OccupiedPosition "Staffed subordinate positions"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Employee has no current position"
// @Router /employees/{id}/reports [get]
func (h *OrgTreeHandler) Reports(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	occupants, err := h.orgTreeService.CurrentOccupantsUnder(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, occupants)
}

// OrgTree handles GET /employees/:id/org-tree
// @Summary Get a manager's occupancy-overlaid org tree
// @Description Presentation tree rooted at the manager's current position.
// @Description Authenticated callers get each occupant enriched with their
// @Description latest score in the [from, to] window; anonymous callers get
// @Description the same tree without scores. The window defaults to the two
// @Description months ending today.
// @Tags hierarchy
// @Produce json
// @Param id path string true "Manager employee ID"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} hierarchy.TreeNode "Org tree"
// @Failure 400 {object} ErrorResponse "Malformed date or inverted window"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Employee has no current position"
// @Security BearerAuth
// @Router /employees/{id}/org-tree [get]
func (h *OrgTreeHandler) OrgTree(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	from, to, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	includeScores := auth.IsAuthenticated(c)

	tree, err := h.orgTreeService.OrgTree(c.Request.Context(), employeeID, from, to, includeScores)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tree)
}
