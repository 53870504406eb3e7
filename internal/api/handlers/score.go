package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"performance-portal-backend/internal/database/models"
	"performance-portal-backend/internal/service"
)

// ScoreHandler handles HTTP requests for performance scores
type ScoreHandler struct {
	scoreService service.ScoreServiceInterface
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreService service.ScoreServiceInterface) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// LatestScoreResponse wraps the latest score lookup; Score is null when the
// employee has no score in the window.
type LatestScoreResponse struct {
	Score *service.ScoreResponse `json:"score"`
}

// Create handles POST /scores
// @Summary Record a performance score
// @Description Record a score for an employee on a position. All three
// @Description sub-scores must be within [1,5].
// @Tags scores
// @Accept json
// @Produce json
// @Param score body service.CreateScoreRequest true "Score data"
// @Success 201 {object} service.ScoreResponse "Recorded score"
// @Failure 400 {object} ErrorResponse "Invalid body or sub-score out of range"
// @Failure 404 {object} ErrorResponse "Employee, author or position not found"
// @Security BearerAuth
// @Router /scores [post]
func (h *ScoreHandler) Create(c *gin.Context) {
	var req service.CreateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.scoreService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, score)
}

// Update handles PUT /scores/:id
// @Summary Correct an existing score
// @Tags scores
// @Accept json
// @Produce json
// @Param id path string true "Score ID"
// @Param score body service.UpdateScoreRequest true "Corrected sub-scores"
// @Success 200 {object} service.ScoreResponse "Updated score"
// @Failure 400 {object} ErrorResponse "Sub-score out of range"
// @Failure 404 {object} ErrorResponse "Score not found"
// @Security BearerAuth
// @Router /scores/{id} [put]
func (h *ScoreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid score ID"})
		return
	}

	var req service.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.scoreService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, score)
}

// Latest handles GET /employees/:id/scores/latest
// @Summary Get the employee's latest score within a window
// @Description Most recent score whose created_at falls in [from, to]. Both
// @Description bounds are calendar dates; to defaults to today and from to two
// @Description months before to. A null score means none in the window.
// @Tags scores
// @Produce json
// @Param id path string true "Employee ID"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} LatestScoreResponse "Latest score or null"
// @Failure 400 {object} ErrorResponse "Malformed date or inverted window"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id}/scores/latest [get]
func (h *ScoreHandler) Latest(c *gin.Context) {
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

	score, err := h.scoreService.LatestScore(employeeID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LatestScoreResponse{Score: score})
}

// ListByEmployee handles GET /employees/:id/scores
// @Summary List scores of an employee
// @Tags scores
// @Produce json
// @Param id path string true "Employee ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ScoreListResponse "Paginated scores, newest first"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id}/scores [get]
func (h *ScoreHandler) ListByEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	page, pageSize := parsePagination(c)

	scores, err := h.scoreService.GetByEmployee(employeeID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scores)
}

// parseWindow reads the from/to query params as calendar dates. The window
// defaults to the two months ending today; to is extended to the end of its
// day so the bound stays inclusive against timestamps.
func parseWindow(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	to := now
	from := now.AddDate(0, -2, 0)

	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(models.DateOnly, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
		from = parsed.AddDate(0, -2, 0)
	}
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(models.DateOnly, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	return from, to, nil
}
