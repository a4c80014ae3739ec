package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/stores"
	"library-api/internal/token"
	"library-api/internal/user"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

const AccessTokenExpiration time.Duration = 24 * time.Hour

type AuthHandler struct {
	Users  stores.UserStore
	Hasher user.PasswordHasher
	Tokens token.TokenService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users stores.UserStore, hasher user.PasswordHasher, tokens token.TokenService) *AuthHandler {
	return &AuthHandler{Users: users, Hasher: hasher, Tokens: tokens}
}

// Login checks the credentials and answers with the caller's identity
// plus a signed access token. Bad credentials are a 400, and the reason
// stays vague on purpose.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.Users.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect username or password"})
		return
	}

	if err := h.Hasher.Compare([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect username or password"})
		return
	}

	tokenString, err := h.Tokens.GenerateAccessToken(u.ID, u.RoleName(), AccessTokenExpiration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"role":     u.RoleName(),
		"token":    tokenString,
	})
}
