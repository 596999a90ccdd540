// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
	version         string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool, version string) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		version:         version,
	}
}

// Check handles GET /health requests.
// A lost database connection degrades the status and answers 503.
func (h *HealthController) Check(c *gin.Context) {
	status, dbStatus, code := "ok", "disconnected", http.StatusServiceUnavailable
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
		code = http.StatusOK
	} else {
		status = "degraded"
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
