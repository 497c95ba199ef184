package results

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
	"github.com/killallgit/featureviz-api/internal/render/view"
	apperrors "github.com/killallgit/featureviz-api/pkg/errors"
)

// Get returns one stored result with its full classifier response
// @Summary      Get a stored result
// @Tags         results
// @Produce      json
// @Param        id path string true "Result ID (uuid)"
// @Success      200 {object} types.ResultResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/results/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stored, err := deps.ResultService.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		resp, err := stored.Response()
		if err != nil {
			types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "stored result is corrupt"))
			return
		}

		c.JSON(http.StatusOK, types.ResultResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK},
			ResultSummary: types.Summarize(*stored),
			Result:        resp,
		})
	}
}

// View renders a stored result as the HTML result page
// @Summary      View a stored result
// @Tags         results
// @Produce      html
// @Param        id path string true "Result ID (uuid)"
// @Success      200 {string} string "HTML page"
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/results/{id}/view [get]
func View(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stored, err := deps.ResultService.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		resp, err := stored.Response()
		if err != nil {
			types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "stored result is corrupt"))
			return
		}

		page := view.Build(*resp, deps.ViewOptions)
		var buf bytes.Buffer
		err = view.RenderDocument(&buf, view.Document{
			Status:   view.StatusResolved,
			FileName: stored.FileName,
			Page:     &page,
		})
		if err != nil {
			types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeRender, "rendering failed"))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}
