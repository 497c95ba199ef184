package page

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
)

// RegisterRoutes registers the browser view
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	engine.GET("/", Get(deps))
	engine.POST(UploadPath, Upload(deps))
}
