package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/stores"
)

// RoleHandler is read-only: roles come from seeding.
type RoleHandler struct {
	Roles stores.RoleStore
}

func NewRoleHandler(roles stores.RoleStore) *RoleHandler {
	return &RoleHandler{Roles: roles}
}

func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.Roles.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list roles"})
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	role, err := h.Roles.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "role not found"})
		return
	}
	c.JSON(http.StatusOK, role)
}
