package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/stores"
)

type DashboardHandler struct {
	Stats stores.StatsStore
}

func NewDashboardHandler(stats stores.StatsStore) *DashboardHandler {
	return &DashboardHandler{Stats: stats}
}

// Dashboard serves the aggregate snapshot, recomputed on every call.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	stats, err := h.Stats.Dashboard(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute dashboard"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
