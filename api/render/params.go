package render

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
	"github.com/killallgit/featureviz-api/internal/models"
	apperrors "github.com/killallgit/featureviz-api/pkg/errors"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
)

var contentTypes = map[string]string{
	formatSVG: "image/svg+xml",
	formatPNG: "image/png",
}

// decodeBody reads the request body as a classifier payload. NaN and
// Infinity literals are accepted.
func decodeBody(c *gin.Context, v any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		types.SendError(c, err)
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		types.SendBadRequest(c, "request body is required", nil)
		return false
	}
	if err := models.Decode(body, v); err != nil {
		types.SendError(c, apperrors.InvalidInput("invalid JSON body", err).WithDetail("reason", err.Error()))
		return false
	}
	return true
}

// queryFormat returns the lower-cased format query parameter, defaulting to
// svg, and rejects anything not in allowed
func queryFormat(c *gin.Context, allowed ...string) (string, bool) {
	format := strings.ToLower(c.DefaultQuery("format", formatSVG))
	for _, a := range allowed {
		if format == a {
			return format, true
		}
	}
	types.SendBadRequest(c, fmt.Sprintf("unsupported format %q", format), gin.H{"allowed": allowed})
	return "", false
}

func queryBool(c *gin.Context, name string) (bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return false, true
	}
	// a bare flag such as ?compact counts as true
	if raw == "" {
		return true, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		types.SendBadRequest(c, fmt.Sprintf("invalid %s parameter, must be a boolean", name), nil)
		return false, false
	}
	return v, true
}

// queryInt parses a non-negative integer no larger than limit
func queryInt(c *gin.Context, name string, def, limit int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		types.SendBadRequest(c, fmt.Sprintf("invalid %s parameter, must be a non-negative integer", name), nil)
		return 0, false
	}
	if v > limit {
		types.SendBadRequest(c, fmt.Sprintf("invalid %s parameter, must be at most %d", name, limit),
			gin.H{name: v, "max": limit})
		return 0, false
	}
	return v, true
}

func queryFloat(c *gin.Context, name string, def float64) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		types.SendBadRequest(c, fmt.Sprintf("invalid %s parameter, must be a number", name), nil)
		return 0, false
	}
	return v, true
}

// sendRendered writes buf with the content type of format. Renderers write
// nothing for empty input, which is answered with 204.
func sendRendered(c *gin.Context, format string, buf *bytes.Buffer) {
	if buf.Len() == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, contentTypes[format], buf.Bytes())
}

func renderFailed(c *gin.Context, err error) {
	types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeRender, "rendering failed"))
}
