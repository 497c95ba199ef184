package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
	"github.com/killallgit/featureviz-api/internal/services/cache"
)

// Get handles health check requests
// @Summary Health check
// @Description Reports the database, cache and session status
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthResponse
// @Failure 503 {object} types.HealthResponse
// @Router /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		response := types.HealthResponse{
			Status:    types.StatusOK,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Services:  map[string]any{},
		}

		dbStatus, healthy := getDatabaseStatus(c, deps)
		response.Services["database"] = dbStatus
		if !healthy {
			response.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		}

		response.Services["cache"] = getCacheStatus(deps)

		if deps != nil && deps.Session != nil {
			response.Services["session"] = gin.H{"state": deps.Session.Snapshot().State}
		}

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(c *gin.Context, deps *types.Dependencies) (gin.H, bool) {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured", "connected": false}, true
	}

	if err := deps.DB.HealthCheck(c.Request.Context()); err != nil {
		return gin.H{"status": "error", "connected": false, "error": err.Error()}, false
	}

	return gin.H{"status": "connected", "connected": true}, true
}

func getCacheStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.Cache == nil {
		return gin.H{"status": "disabled"}
	}
	if sp, ok := deps.Cache.(cache.StatsProvider); ok {
		return gin.H{"status": "enabled", "stats": sp.Stats()}
	}
	return gin.H{"status": "enabled"}
}
