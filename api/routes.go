package api

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/featureviz-api/api/classify"
	"github.com/killallgit/featureviz-api/api/health"
	"github.com/killallgit/featureviz-api/api/middleware"
	"github.com/killallgit/featureviz-api/api/page"
	"github.com/killallgit/featureviz-api/api/render"
	"github.com/killallgit/featureviz-api/api/results"
	"github.com/killallgit/featureviz-api/api/types"
	"github.com/killallgit/featureviz-api/api/version"
	_ "github.com/killallgit/featureviz-api/docs/swagger"
	"github.com/killallgit/featureviz-api/pkg/config"
	apperrors "github.com/killallgit/featureviz-api/pkg/errors"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)
	page.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	rl := cfg.RateLimiting
	limit := func(rps float64, burst int) []gin.HandlerFunc {
		if !rl.Enabled {
			return nil
		}
		return []gin.HandlerFunc{PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)}
	}

	// Classification calls a remote model and is limited separately
	classifyGroup := v1.Group("", limit(2, 5)...)
	classify.RegisterRoutes(classifyGroup, deps)

	// Rendering is CPU bound, responses are cached when a cache is configured
	renderMiddleware := limit(rl.RequestsPerSecond, rl.Burst)
	if deps.Cache != nil && cfg.Cache.Enabled {
		renderMiddleware = append(renderMiddleware, middleware.CacheMiddleware(middleware.CacheConfig{
			Cache:      deps.Cache,
			DefaultTTL: cfg.Cache.TTL,
			Enabled:    true,
			Methods:    []string{http.MethodGet, http.MethodPost},
		}))
	}
	render.RegisterRoutes(v1, deps, renderMiddleware...)

	// Stored results need the database
	if deps.ResultService != nil {
		resultsGroup := v1.Group("", limit(rl.RequestsPerSecond, rl.Burst)...)
		results.RegisterRoutes(resultsGroup, deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "The requested endpoint was not found",
			Error:   string(apperrors.ErrCodeNotFound),
			Details: gin.H{"path": c.Request.URL.Path},
		})
	}
}
