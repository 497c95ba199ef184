package results

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
)

// List returns recent classification results without their payloads
// @Summary      List stored results
// @Tags         results
// @Produce      json
// @Param        limit query int false "Maximum number of results (1-100)" default(20)
// @Success      200 {object} types.ResultsResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/results [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 1 {
				types.SendBadRequest(c, "invalid limit parameter, must be a positive integer", nil)
				return
			}
			limit = v
		}

		stored, err := deps.ResultService.List(c.Request.Context(), limit)
		if err != nil {
			types.SendError(c, err)
			return
		}

		summaries := make([]types.ResultSummary, len(stored))
		for i, r := range stored {
			summaries[i] = types.Summarize(r)
		}

		c.JSON(http.StatusOK, types.ResultsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Results:      summaries,
			Count:        len(summaries),
		})
	}
}
