package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	redisHealthChecker func() bool // nil when the guard runs in memory
	lastSyncedAt       func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status"`
	Redis        string `json:"redis"`
	Ledger       string `json:"ledger"`
	LastSyncedAt string `json:"last_synced_at,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(redisHealthChecker func() bool, lastSyncedAt func() time.Time) *HealthController {
	return &HealthController{
		redisHealthChecker: redisHealthChecker,
		lastSyncedAt:       lastSyncedAt,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
// The service stays up while the ledger service is unreachable, so the status is always ok.
func (h *HealthController) Check(c *gin.Context) {
	redisStatus := "disabled"
	if h.redisHealthChecker != nil {
		redisStatus = "disconnected"
		if h.redisHealthChecker() {
			redisStatus = "connected"
		}
	}

	response := HealthResponse{
		Status:    "ok",
		Redis:     redisStatus,
		Ledger:    "not_synced",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.lastSyncedAt != nil {
		if synced := h.lastSyncedAt(); !synced.IsZero() {
			response.Ledger = "synced"
			response.LastSyncedAt = synced.UTC().Format(time.RFC3339)
		}
	}

	c.JSON(http.StatusOK, response)
}
