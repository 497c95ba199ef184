package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultInferenceURL, cfg.Inference.URL)
	assert.Equal(t, 90*time.Second, cfg.Inference.Timeout)
	assert.Equal(t, int64(32<<20), cfg.Inference.MaxUploadBytes)
	assert.Equal(t, 960.0, cfg.Render.SpectrogramWidth)
	assert.Equal(t, 128.0, cfg.Render.CompactMaxWidth)
	assert.Equal(t, 600.0, cfg.Render.WaveformWidth)
	assert.Equal(t, 3, cfg.Render.TopPredictions)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSOrigins)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "127.0.0.1"
  port: 8081
inference:
  url: "http://localhost:9000/classify"
  timeout: 5s
render:
  spectrogram_width: 720
logging:
  format: json
`)
	t.Setenv("FEATUREVIZ_SERVER_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://localhost:9000/classify", cfg.Inference.URL)
	assert.Equal(t, 5*time.Second, cfg.Inference.Timeout)
	assert.Equal(t, 720.0, cfg.Render.SpectrogramWidth)
	assert.Equal(t, 500.0, cfg.Render.DefaultMaxWidth)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "server: [not: valid")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return *cfg
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
		check   func(*testing.T, Config)
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "bad port", modify: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "zero upload limit", modify: func(c *Config) { c.Inference.MaxUploadBytes = 0 }, wantErr: true},
		{name: "negative rate", modify: func(c *Config) { c.Inference.RateLimit = -1 }, wantErr: true},
		{name: "zero render box", modify: func(c *Config) { c.Render.CompactMaxWidth = 0 }, wantErr: true},
		{
			name:   "auto-corrected fields",
			modify: func(c *Config) { c.Render.TopPredictions = 0; c.RateLimiting.Burst = 0; c.Logging.Format = "xml" },
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 3, c.Render.TopPredictions)
				assert.Equal(t, 1, c.RateLimiting.Burst)
				assert.Equal(t, "text", c.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestInit_GlobalConfig(t *testing.T) {
	t.Setenv("FEATUREVIZ_INFERENCE_URL", "http://classifier.local/run")

	require.NoError(t, Init())
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://classifier.local/run", cfg.Inference.URL)
	assert.Equal(t, "http://classifier.local/run", GetString("inference.url"))
	assert.Equal(t, "info", GetString("logging.level"))
}
