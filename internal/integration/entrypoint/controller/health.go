// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goat-farm/backend/internal/integration/entrypoint/dto"
)

// HealthController reports service liveness and database reachability.
type HealthController struct {
	databaseUp func() bool
}

// NewHealthController creates a new health controller instance. The databaseUp
// probe may be nil when the service starts without a database connection.
func NewHealthController(databaseUp func() bool) *HealthController {
	return &HealthController{databaseUp: databaseUp}
}

// Check handles GET /health requests. The service always answers 200; only
// the database field degrades when the connection is down, so a monitor can
// tell a dead process from a dead database.
func (h *HealthController) Check(ctx *gin.Context) {
	database := "disconnected"
	if h.databaseUp != nil && h.databaseUp() {
		database = "connected"
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Database:  database,
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
