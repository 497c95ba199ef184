package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/internal/services/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedRouter(t *testing.T, calls *int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mc := cache.NewMemoryCache(1)
	t.Cleanup(mc.Stop)

	router := gin.New()
	router.Use(CacheMiddleware(CacheConfig{
		Cache:      mc,
		DefaultTTL: time.Minute,
		Enabled:    true,
		Methods:    []string{http.MethodGet, http.MethodPost},
	}))
	router.GET("/legend", func(c *gin.Context) {
		*calls++
		c.Data(http.StatusOK, "image/svg+xml", []byte("<svg>"+c.Query("width")+"</svg>"))
	})
	router.POST("/render", func(c *gin.Context) {
		*calls++
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "image/svg+xml", append([]byte("<svg>"), body...))
	})
	router.POST("/empty", func(c *gin.Context) {
		*calls++
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestCacheMiddleware_GetHitAfterMiss(t *testing.T) {
	calls := 0
	router := newCachedRouter(t, &calls)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/legend?width=200", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/legend?width=200", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "<svg>200</svg>", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("ETag"))
	assert.Equal(t, 1, calls)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/legend?width=300", nil))
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_PostKeyedByBody(t *testing.T) {
	calls := 0
	router := newCachedRouter(t, &calls)

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(body)))
		return w
	}

	w := post(`{"a":1}`)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, `<svg>{"a":1}`, w.Body.String())

	w = post(`{"a":1}`)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Equal(t, `<svg>{"a":1}`, w.Body.String())

	w = post(`{"a":2}`)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_NotModified(t *testing.T) {
	calls := 0
	router := newCachedRouter(t, &calls)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/legend", nil))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/legend", nil))
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/legend", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Equal(t, 1, calls)
}

func TestCacheMiddleware_SkipsEmptyAndBypass(t *testing.T) {
	calls := 0
	router := newCachedRouter(t, &calls)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/empty", strings.NewReader("{}")))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
	assert.Equal(t, 2, calls)

	req := httptest.NewRequest(http.MethodGet, "/legend", nil)
	req.Header.Set("Cache-Control", "no-cache")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "BYPASS", w.Header().Get("X-Cache"))
}

func TestCacheMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	calls := 0

	router := gin.New()
	router.Use(CacheMiddleware(CacheConfig{Enabled: false}))
	router.GET("/x", func(c *gin.Context) {
		calls++
		c.String(http.StatusOK, "x")
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Empty(t, w.Header().Get("X-Cache"))
	}
	assert.Equal(t, 2, calls)
}

func TestShouldBypassCache(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		want   bool
	}{
		{name: "no headers", want: false},
		{name: "no-cache", header: map[string]string{"Cache-Control": "no-cache"}, want: true},
		{name: "no-store mixed case", header: map[string]string{"Cache-Control": "public, No-Store"}, want: true},
		{name: "max-age zero", header: map[string]string{"Cache-Control": "max-age=0"}, want: true},
		{name: "max-age positive", header: map[string]string{"Cache-Control": "max-age=60"}, want: false},
		{name: "pragma with cache-control", header: map[string]string{"Cache-Control": "public", "Pragma": "no-cache"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, shouldBypassCache(req))
		})
	}
}

func TestGenerateCacheKey(t *testing.T) {
	a := httptest.NewRequest(http.MethodGet, "/legend?b=2&a=1", nil)
	b := httptest.NewRequest(http.MethodGet, "/legend?a=1&b=2", nil)
	assert.Equal(t, generateCacheKey(a, ""), generateCacheKey(b, ""))

	p := httptest.NewRequest(http.MethodPost, "/legend?a=1&b=2", nil)
	assert.NotEqual(t, generateCacheKey(b, ""), generateCacheKey(p, ""))
	assert.NotEqual(t, generateCacheKey(p, "aa"), generateCacheKey(p, "bb"))
}

func TestCachedResponse_RoundTrip(t *testing.T) {
	in := CachedResponse{
		Status:      http.StatusOK,
		Headers:     http.Header{"X-Custom": []string{"one"}},
		Body:        []byte("line1\n\nline2"),
		ContentType: "image/png",
		CachedAt:    time.Unix(1700000000, 0),
		ETag:        generateETag([]byte("x")),
	}

	data, err := serializeCachedResponse(in)
	require.NoError(t, err)

	out, err := parseCachedResponse(data)
	require.NoError(t, err)
	assert.Equal(t, in.Status, out.Status)
	assert.Equal(t, in.ContentType, out.ContentType)
	assert.Equal(t, in.ETag, out.ETag)
	assert.Equal(t, in.Body, out.Body)
	assert.Equal(t, "one", out.Headers.Get("X-Custom"))
	assert.True(t, in.CachedAt.Equal(out.CachedAt))

	_, err = parseCachedResponse([]byte("garbage"))
	assert.Error(t, err)
}
