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
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests.
// The API reports itself degraded, with 503, while the database is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	status := http.StatusOK

	if h.dbHealthChecker == nil || !h.dbHealthChecker() {
		response.Status = "degraded"
		response.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}
