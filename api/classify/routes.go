package classify

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
)

// RegisterRoutes registers classification routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/classify", Post(deps))
	router.GET("/state", GetState(deps))
	router.DELETE("/state", DeleteState(deps))
}
