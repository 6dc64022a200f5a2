package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/social-dl-go/internal/app"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler handles health check requests
type HealthHandler struct {
	downloadMgr *app.DownloadManager
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(downloadMgr *app.DownloadManager) *HealthHandler {
	return &HealthHandler{downloadMgr: downloadMgr}
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Backend string `json:"backend"`
	Busy    bool   `json:"busy"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
		Backend: h.downloadMgr.Backend(),
		Busy:    h.downloadMgr.IsBusy(),
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.downloadMgr.Backend() == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "no download backend configured",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
