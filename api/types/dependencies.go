package types

import (
	"github.com/killallgit/featureviz-api/internal/database"
	"github.com/killallgit/featureviz-api/internal/render/view"
	"github.com/killallgit/featureviz-api/internal/services/cache"
	"github.com/killallgit/featureviz-api/internal/services/results"
	"github.com/killallgit/featureviz-api/internal/services/session"
)

// DefaultMaxUploadBytes bounds classify uploads when nothing is configured
const DefaultMaxUploadBytes int64 = 32 << 20

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	Session        *session.Session
	ResultService  results.ResultService
	Cache          cache.Cache
	ViewOptions    view.Options
	MaxUploadBytes int64
}

// UploadLimit returns the configured upload limit or the default
func (d *Dependencies) UploadLimit() int64 {
	if d == nil || d.MaxUploadBytes <= 0 {
		return DefaultMaxUploadBytes
	}
	return d.MaxUploadBytes
}
