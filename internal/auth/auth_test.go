package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthService(t *testing.T) {
	t.Run("valid secret", func(t *testing.T) {
		service, err := NewAuthService("test-signing-key", time.Hour)
		assert.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("missing secret", func(t *testing.T) {
		service, err := NewAuthService("", time.Hour)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "jwt secret is required")
		assert.Nil(t, service)
	})

	t.Run("non-positive ttl falls back to default", func(t *testing.T) {
		service, err := NewAuthService("test-signing-key", 0)
		require.NoError(t, err)

		token, err := service.GenerateToken(uuid.New(), "jane@test.com")
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.True(t, claims.ExpiresAt.After(time.Now().Add(11*time.Hour)))
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService("test-signing-key-for-jwt-operations", time.Hour)
	require.NoError(t, err)

	employeeID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := service.GenerateToken(employeeID, "jane@test.com")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, employeeID.String(), claims.EmployeeID)
		assert.Equal(t, "jane@test.com", claims.Email)
		assert.Equal(t, "performance-portal", claims.Issuer)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := service.GenerateToken(employeeID, "jane@test.com")
		require.NoError(t, err)

		other, err := NewAuthService("a-different-signing-key", time.Hour)
		require.NoError(t, err)

		claims, err := other.ValidateJWT(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived, err := NewAuthService("test-signing-key-for-jwt-operations", time.Nanosecond)
		require.NoError(t, err)

		token, err := shortLived.GenerateToken(employeeID, "jane@test.com")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		claims, err := shortLived.ValidateJWT(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("garbage token", func(t *testing.T) {
		claims, err := service.ValidateJWT("not.a.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService("test-middleware-key", time.Hour)
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"employee_id": c.GetString("employee_id")})
	})

	t.Run("missing header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		employeeID := uuid.New()
		token, err := service.GenerateToken(employeeID, "jane@test.com")
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), employeeID.String())
	})
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService("test-middleware-key", time.Hour)
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/open", middleware.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": IsAuthenticated(c)})
	})

	t.Run("no header passes through unauthenticated", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/open", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"authenticated":false`)
	})

	t.Run("invalid token passes through unauthenticated", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"authenticated":false`)
	})

	t.Run("valid token authenticates", func(t *testing.T) {
		token, err := service.GenerateToken(uuid.New(), "jane@test.com")
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"authenticated":true`)
	})
}
