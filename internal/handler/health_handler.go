package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	version string
	mode    string
}

// NewHealthHandler creates a new HealthHandler. mode is "demo" or "live".
func NewHealthHandler(version, mode string) *HealthHandler {
	return &HealthHandler{version: version, mode: mode}
}

// Check handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
		"mode":    h.mode,
	})
}
