package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/middleware"
	"library-api/internal/token"
)

func protectedRouter(tokens token.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", middleware.RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet("user_id"),
			"role":    c.MustGet("role"),
		})
	})
	return r
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("test-secret")}
	raw, err := svc.GenerateAccessToken(7, "Teacher", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	protectedRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"Teacher"`)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("test-secret")}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/secret", nil)
	protectedRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsBadScheme(t *testing.T) {
	svc := &token.JWTService{Secret: []byte("test-secret")}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	protectedRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsForgedToken(t *testing.T) {
	signer := &token.JWTService{Secret: []byte("attacker-secret")}
	raw, err := signer.GenerateAccessToken(7, "Librarian", time.Hour)
	require.NoError(t, err)

	svc := &token.JWTService{Secret: []byte("test-secret")}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	protectedRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
