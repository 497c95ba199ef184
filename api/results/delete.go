package results

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
)

// Delete removes a stored result
// @Summary      Delete a stored result
// @Tags         results
// @Produce      json
// @Param        id path string true "Result ID (uuid)"
// @Success      200 {object} types.BaseResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/results/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.ResultService.Delete(c.Request.Context(), c.Param("id")); err != nil {
			types.SendError(c, err)
			return
		}
		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "result deleted",
		})
	}
}
