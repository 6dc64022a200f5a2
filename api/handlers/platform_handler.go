package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/social-dl-go/internal/domain"
)

// PlatformHandler exposes the platform detector
type PlatformHandler struct{}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler() *PlatformHandler {
	return &PlatformHandler{}
}

// PlatformInfo describes a platform and its display icon
type PlatformInfo struct {
	Platform domain.Platform `json:"platform"`
	Icon     *domain.Icon    `json:"icon"`
}

// List handles GET /api/v1/platforms
func (h *PlatformHandler) List(c *gin.Context) {
	platforms := make([]PlatformInfo, 0, len(domain.SupportedPlatforms()))
	for _, p := range domain.SupportedPlatforms() {
		platforms = append(platforms, PlatformInfo{Platform: p, Icon: p.Icon()})
	}

	c.JSON(http.StatusOK, gin.H{"platforms": platforms})
}

// Detect handles GET /api/v1/platforms/detect?url=
func (h *PlatformHandler) Detect(c *gin.Context) {
	url := c.Query("url")
	platform := domain.DetectPlatform(url)

	c.JSON(http.StatusOK, gin.H{
		"url":      url,
		"platform": platform,
		"icon":     platform.Icon(),
	})
}
