package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/featureviz-api/internal/services/cache"
)

// CacheConfig holds configuration for cache middleware
type CacheConfig struct {
	Cache      cache.Cache
	DefaultTTL time.Duration
	TTLByPath  map[string]time.Duration // Path-specific TTLs
	Enabled    bool
	// Methods that may be served from cache. Defaults to GET only. POST
	// requests are keyed by a hash of their body.
	Methods []string
}

func (c CacheConfig) allows(method string) bool {
	if len(c.Methods) == 0 {
		return method == http.MethodGet
	}
	for _, m := range c.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// errReader replays a read error after the buffered prefix
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// responseWriter captures response for caching
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// CacheMiddleware creates a cache middleware
func CacheMiddleware(config CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled {
			c.Next()
			return
		}

		if !config.allows(c.Request.Method) {
			c.Next()
			return
		}

		// Check cache control headers from client
		if shouldBypassCache(c.Request) {
			c.Header("X-Cache", "BYPASS")
			c.Next()
			return
		}

		var bodyHash string
		if c.Request.Body != nil && c.Request.Method != http.MethodGet {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				// Let the handler see the same failure
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), errReader{err}))
				c.Header("X-Cache", "BYPASS")
				c.Next()
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			sum := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(sum[:])
		}

		key := generateCacheKey(c.Request, bodyHash)
		ctx := c.Request.Context()

		if cachedData, found := config.Cache.Get(ctx, key); found {
			if response, err := parseCachedResponse(cachedData); err == nil {
				for key, values := range response.Headers {
					if skipStoredHeader(key) {
						continue
					}
					for _, value := range values {
						c.Header(key, value)
					}
				}
				c.Header("X-Cache", "HIT")
				c.Header("Age", fmt.Sprintf("%d", int(time.Since(response.CachedAt).Seconds())))
				c.Header("ETag", response.ETag)

				if match := c.GetHeader("If-None-Match"); match != "" && match == response.ETag {
					c.AbortWithStatus(http.StatusNotModified)
					return
				}

				c.Data(response.Status, response.ContentType, response.Body)
				c.Abort()
				return
			}
		}

		// Cache MISS - capture response
		c.Header("X-Cache", "MISS")

		// Create response writer to capture response
		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
			status:         http.StatusOK,
		}
		c.Writer = w

		// Process request
		c.Next()

		// Only cache successful responses
		if w.status == http.StatusOK && w.body.Len() > 0 {
			// Determine TTL
			ttl := config.DefaultTTL
			if pathTTL, exists := config.TTLByPath[c.Request.URL.Path]; exists {
				ttl = pathTTL
			} else {
				// Check for path prefix match
				for path, pathTTL := range config.TTLByPath {
					if strings.HasPrefix(c.Request.URL.Path, path) {
						ttl = pathTTL
						break
					}
				}
			}

			cachedResponse := CachedResponse{
				Status:      w.status,
				Headers:     c.Writer.Header().Clone(),
				Body:        w.body.Bytes(),
				ContentType: c.Writer.Header().Get("Content-Type"),
				CachedAt:    time.Now(),
				ETag:        generateETag(w.body.Bytes()),
			}

			if data, err := serializeCachedResponse(cachedResponse); err == nil {
				_ = config.Cache.Set(ctx, key, data, ttl)
			}
		}
	}
}

// CachedResponse represents a cached HTTP response
type CachedResponse struct {
	Status      int
	Headers     http.Header
	Body        []byte
	ContentType string
	CachedAt    time.Time
	ETag        string
}

// shouldBypassCache checks if cache should be bypassed based on request headers
func shouldBypassCache(req *http.Request) bool {
	cacheControl := req.Header.Get("Cache-Control")
	if cacheControl == "" {
		return false
	}

	// Parse cache control directives
	directives := strings.Split(strings.ToLower(cacheControl), ",")
	for _, directive := range directives {
		directive = strings.TrimSpace(directive)

		// Check for no-cache or no-store
		if directive == "no-cache" || directive == "no-store" {
			return true
		}

		// Check for max-age=0
		if strings.HasPrefix(directive, "max-age=") {
			if maxAge := strings.TrimPrefix(directive, "max-age="); maxAge == "0" {
				return true
			}
		}
	}

	// Also check Pragma header for backwards compatibility
	if req.Header.Get("Pragma") == "no-cache" {
		return true
	}

	return false
}

// skipStoredHeader drops headers that are recomputed on every hit
func skipStoredHeader(key string) bool {
	switch http.CanonicalHeaderKey(key) {
	case "X-Cache", "Age", "Etag", "Content-Length", "Content-Type":
		return true
	}
	return false
}

// generateCacheKey creates a unique key for the request. bodyHash is empty
// for requests without a body.
func generateCacheKey(req *http.Request, bodyHash string) string {
	parts := []string{req.Method, req.URL.Path}

	// Add sorted query parameters
	if req.URL.RawQuery != "" {
		params := req.URL.Query()
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			for _, v := range params[k] {
				parts = append(parts, fmt.Sprintf("%s=%s", k, v))
			}
		}
	}

	if bodyHash != "" {
		parts = append(parts, "body="+bodyHash)
	}

	return "http:" + strings.Join(parts, ":")
}

// generateETag creates an ETag for the response body
func generateETag(body []byte) string {
	hash := sha256.Sum256(body)
	return fmt.Sprintf(`"%s"`, hex.EncodeToString(hash[:]))
}

// serializeCachedResponse serializes a cached response
func serializeCachedResponse(response CachedResponse) ([]byte, error) {
	var buf bytes.Buffer

	// Write metadata
	buf.WriteString(fmt.Sprintf("%d|%s|%d|%s\n",
		response.Status,
		response.ContentType,
		response.CachedAt.Unix(),
		response.ETag))

	// Write headers
	for key, values := range response.Headers {
		for _, value := range values {
			buf.WriteString(fmt.Sprintf("%s:%s\n", key, value))
		}
	}
	buf.WriteString("\n")

	// Write body
	buf.Write(response.Body)

	return buf.Bytes(), nil
}

// parseCachedResponse deserializes a cached response
func parseCachedResponse(data []byte) (*CachedResponse, error) {
	parts := bytes.SplitN(data, []byte("\n\n"), 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid cached response format")
	}

	lines := bytes.Split(parts[0], []byte("\n"))
	if len(lines) < 1 {
		return nil, fmt.Errorf("missing metadata")
	}

	// Parse metadata
	metadata := strings.Split(string(lines[0]), "|")
	if len(metadata) != 4 {
		return nil, fmt.Errorf("invalid metadata format")
	}

	status, _ := strconv.Atoi(metadata[0])
	cachedAt, _ := strconv.ParseInt(metadata[2], 10, 64)

	response := &CachedResponse{
		Status:      status,
		ContentType: metadata[1],
		CachedAt:    time.Unix(cachedAt, 0),
		ETag:        metadata[3],
		Headers:     make(http.Header),
		Body:        parts[1],
	}

	// Parse headers
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) == 0 {
			break
		}
		headerParts := bytes.SplitN(lines[i], []byte(":"), 2)
		if len(headerParts) == 2 {
			response.Headers.Add(string(headerParts[0]), string(headerParts[1]))
		}
	}

	return response, nil
}
