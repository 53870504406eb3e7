package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClaimsContextKey is the gin context key under which validated claims are stored
const ClaimsContextKey = "auth_claims"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("employee_id", claims.EmployeeID)
		c.Set("email", claims.Email)
		c.Set(ClaimsContextKey, claims)

		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them.
// The org-tree read uses this: scores are attached only for authenticated
// callers, the structural tree renders for everyone.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		if claims, err := m.service.ValidateJWT(tokenString); err == nil {
			c.Set("employee_id", claims.EmployeeID)
			c.Set("email", claims.Email)
			c.Set(ClaimsContextKey, claims)
		}

		c.Next()
	}
}

// IsAuthenticated reports whether the request carries validated claims
func IsAuthenticated(c *gin.Context) bool {
	_, ok := c.Get(ClaimsContextKey)
	return ok
}
