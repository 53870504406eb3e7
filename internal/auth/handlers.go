package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"performance-portal-backend/internal/repository"
)

// AuthHandler handles token issuance
type AuthHandler struct {
	service      *AuthService
	employeeRepo repository.EmployeeRepositoryInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService, employeeRepo repository.EmployeeRepositoryInterface) *AuthHandler {
	return &AuthHandler{service: service, employeeRepo: employeeRepo}
}

// TokenRequest is the body of POST /auth/token
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Token handles POST /auth/token
// @Summary Issue a JWT for an employee
// @Description Issue a signed token for the employee identified by email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Employee email"
// @Success 200 {object} map[string]interface{} "Token issued"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.employeeRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up employee", "details": err.Error()})
		return
	}

	token, err := h.service.GenerateToken(employee.ID, employee.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "employee_id": employee.ID})
}
