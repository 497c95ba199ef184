package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/api/types"
	"github.com/killallgit/featureviz-api/internal/database"
	"github.com/killallgit/featureviz-api/internal/services/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		setupDeps        func(t *testing.T) *types.Dependencies
		expectedStatus   int
		expectedHealth   string
		expectedDBStatus string
		expectedCache    string
	}{
		{
			name: "healthy with database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })
				return &types.Dependencies{DB: db}
			},
			expectedStatus:   http.StatusOK,
			expectedHealth:   "ok",
			expectedDBStatus: "connected",
			expectedCache:    "disabled",
		},
		{
			name: "healthy without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				mc := cache.NewMemoryCache(1)
				t.Cleanup(mc.Stop)
				return &types.Dependencies{Cache: mc}
			},
			expectedStatus:   http.StatusOK,
			expectedHealth:   "ok",
			expectedDBStatus: "not configured",
			expectedCache:    "enabled",
		},
		{
			name: "unhealthy with closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				sqlDB, err := db.DB.DB()
				require.NoError(t, err)
				require.NoError(t, sqlDB.Close())
				return &types.Dependencies{DB: db}
			},
			expectedStatus:   http.StatusServiceUnavailable,
			expectedHealth:   "unhealthy",
			expectedDBStatus: "error",
			expectedCache:    "disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			Get(tt.setupDeps(t))(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response struct {
				Status   string                    `json:"status"`
				Services map[string]map[string]any `json:"services"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			assert.Equal(t, tt.expectedHealth, response.Status)
			assert.Equal(t, tt.expectedDBStatus, response.Services["database"]["status"])
			assert.Equal(t, tt.expectedCache, response.Services["cache"]["status"])
		})
	}
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router, &types.Dependencies{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
