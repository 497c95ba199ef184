package results

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
)

// RegisterRoutes registers stored result routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	resultsGroup := router.Group("/results")
	resultsGroup.GET("", List(deps))
	resultsGroup.GET("/:id", Get(deps))
	resultsGroup.GET("/:id/view", View(deps))
	resultsGroup.DELETE("/:id", Delete(deps))
}
