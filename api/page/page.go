// Package page serves the browser view: the upload form and the current
// classification result.
package page

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/classify"
	"github.com/killallgit/featureviz-api/api/types"
	"github.com/killallgit/featureviz-api/internal/render/view"
	"github.com/killallgit/featureviz-api/internal/services/session"
	apperrors "github.com/killallgit/featureviz-api/pkg/errors"
)

// UploadPath receives the upload form
const UploadPath = "/upload"

// Get renders the current session state
// @Summary      Web view
// @Description  Upload form plus the loading indicator, error card or result, depending on state
// @Tags         page
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := session.Snapshot{State: session.StateIdle}
		if deps.Session != nil {
			snap = deps.Session.Snapshot()
		}
		write(c, http.StatusOK, documentFor(deps, snap))
	}
}

// Upload classifies the submitted file and redirects back to the view.
// Uploads rejected before classification are shown as an error card.
// @Summary      Upload from the web view
// @Tags         page
// @Accept       multipart/form-data
// @Produce      html
// @Param        file formData file true "WAV audio file"
// @Success      303 "Redirect to the view"
// @Failure      409 {string} string "HTML page with the pending state"
// @Failure      415 {string} string "HTML page with an error card"
// @Router       /upload [post]
func Upload(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Session == nil {
			rejected(c, deps, apperrors.New(apperrors.ErrCodeConfigRequired, "classifier is not configured"))
			return
		}

		fileName, audio, err := classify.ReadUpload(c, deps.UploadLimit())
		if err != nil {
			rejected(c, deps, err)
			return
		}

		// failures are kept in the session and shown after the redirect
		if _, err := deps.Session.Submit(c.Request.Context(), fileName, audio); err != nil {
			if appErr := types.ToAppError(err); appErr.GetHTTPCode() == http.StatusConflict {
				write(c, http.StatusConflict, documentFor(deps, deps.Session.Snapshot()))
				return
			}
		}

		c.Redirect(http.StatusSeeOther, "/")
	}
}

func rejected(c *gin.Context, deps *types.Dependencies, err error) {
	appErr := types.ToAppError(err)
	doc := view.Document{
		Status:    view.StatusFailed,
		Error:     appErr.Message,
		UploadURL: UploadPath,
	}
	write(c, appErr.GetHTTPCode(), doc)
}

func documentFor(deps *types.Dependencies, snap session.Snapshot) view.Document {
	doc := view.Document{
		Status:    string(snap.State),
		FileName:  snap.FileName,
		Error:     snap.Error,
		UploadURL: UploadPath,
	}
	if snap.State == session.StateResolved && snap.Result != nil {
		page := view.Build(*snap.Result, deps.ViewOptions)
		doc.Page = &page
	}
	return doc
}

func write(c *gin.Context, status int, doc view.Document) {
	var buf bytes.Buffer
	if err := view.RenderDocument(&buf, doc); err != nil {
		types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeRender, "rendering failed"))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
