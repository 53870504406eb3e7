package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"performance-portal-backend/internal/service"
)

// AssignmentHandler handles HTTP requests for the assignment ledgers
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// AssignPosition handles POST /assignments/position
// @Summary Open a position assignment
// @Description Assign an employee to a position starting on the given date.
// @Description An employee may hold at most one open position assignment, and
// @Description a position may have at most one current holder.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignPositionRequest true "Assignment data"
// @Success 201 {object} service.PositionAssignmentResponse "Opened assignment"
// @Failure 400 {object} ErrorResponse "Invalid body or future start date"
// @Failure 404 {object} ErrorResponse "Employee or position not found"
// @Failure 409 {object} ErrorResponse "Employee already assigned or position occupied"
// @Router /assignments/position [post]
func (h *AssignmentHandler) AssignPosition(c *gin.Context) {
	var req service.AssignPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.AssignPosition(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// ClosePosition handles PATCH /assignments/position/close
// @Summary Close an open position assignment
// @Description Close the employee's open assignment on the given position.
// @Description The end date must not precede the start date.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.CloseAssignmentRequest true "Close data (subject_id is the position id)"
// @Success 200 {object} service.PositionAssignmentResponse "Closed assignment"
// @Failure 400 {object} ErrorResponse "Invalid body or end before start"
// @Failure 404 {object} ErrorResponse "No matching open assignment"
// @Router /assignments/position/close [patch]
func (h *AssignmentHandler) ClosePosition(c *gin.Context) {
	var req service.CloseAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.ClosePositionAssignment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// AssignPost handles POST /assignments/post
// @Summary Open a post assignment
// @Description Assign an employee to a post (job grade) starting on the given
// @Description date. An employee may hold at most one open post assignment.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignPostRequest true "Assignment data"
// @Success 201 {object} service.PostAssignmentResponse "Opened assignment"
// @Failure 400 {object} ErrorResponse "Invalid body or future start date"
// @Failure 404 {object} ErrorResponse "Employee or post not found"
// @Failure 409 {object} ErrorResponse "Employee already has an open post assignment"
// @Router /assignments/post [post]
func (h *AssignmentHandler) AssignPost(c *gin.Context) {
	var req service.AssignPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.AssignPost(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// ClosePost handles PATCH /assignments/post/close
// @Summary Close an open post assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.CloseAssignmentRequest true "Close data (subject_id is the post id)"
// @Success 200 {object} service.PostAssignmentResponse "Closed assignment"
// @Failure 400 {object} ErrorResponse "Invalid body or end before start"
// @Failure 404 {object} ErrorResponse "No matching open assignment"
// @Router /assignments/post/close [patch]
func (h *AssignmentHandler) ClosePost(c *gin.Context) {
	var req service.CloseAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.ClosePostAssignment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CurrentHolder handles GET /positions/:id/holder
// @Summary Get the current holder of a position
// @Tags assignments
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} service.CurrentHolderResponse "Current occupant"
// @Failure 404 {object} ErrorResponse "Position not found or vacant"
// @Router /positions/{id}/holder [get]
func (h *AssignmentHandler) CurrentHolder(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	holder, err := h.assignmentService.CurrentHolder(positionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, holder)
}

// EmployeeHistory handles GET /employees/:id/assignments
// @Summary Get the assignment history of an employee
// @Description Full position and post assignment ledgers of an employee,
// @Description open intervals included.
// @Tags assignments
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} service.EmployeeHistoryResponse "Assignment history"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id}/assignments [get]
func (h *AssignmentHandler) EmployeeHistory(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	history, err := h.assignmentService.EmployeeHistory(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
