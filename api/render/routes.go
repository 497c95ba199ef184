package render

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
)

// RegisterRoutes registers render routes. Extra handlers, such as the
// response cache, run before each render handler.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, middleware ...gin.HandlerFunc) {
	renderGroup := router.Group("/render", middleware...)
	renderGroup.POST("/partition", Partition(deps))
	renderGroup.POST("/featuremap", FeatureMap(deps))
	renderGroup.POST("/waveform", Waveform(deps))
	renderGroup.GET("/legend", Legend(deps))
	renderGroup.POST("/predictions", Predictions(deps))
	renderGroup.POST("/view", View(deps))
}
