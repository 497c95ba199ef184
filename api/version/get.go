package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/pkg/version"
)

// Get handles version requests
// @Summary Build information
// @Tags version
// @Produce json
// @Success 200 {object} version.Info
// @Router /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	}
}
