package classify

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
	"github.com/killallgit/featureviz-api/internal/services/session"
)

// GetState returns the current request lifecycle
// @Summary      Current classification state
// @Tags         classify
// @Produce      json
// @Success      200 {object} types.StateResponse
// @Router       /api/v1/state [get]
func GetState(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := session.Snapshot{State: session.StateIdle}
		if deps.Session != nil {
			snap = deps.Session.Snapshot()
		}
		c.JSON(http.StatusOK, types.StateResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Snapshot:     snap,
		})
	}
}

// DeleteState clears the current result
// @Summary      Reset to idle
// @Tags         classify
// @Produce      json
// @Success      200 {object} types.StateResponse
// @Failure      409 {object} types.ErrorResponse "A request is pending"
// @Router       /api/v1/state [delete]
func DeleteState(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Session != nil {
			if err := deps.Session.Reset(); err != nil {
				types.SendError(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, types.StateResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Snapshot:     session.Snapshot{State: session.StateIdle},
		})
	}
}
