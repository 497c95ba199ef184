package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment" yaml:"environment"`
	Server       ServerConfig    `mapstructure:"server" yaml:"server"`
	Database     DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Inference    InferenceConfig `mapstructure:"inference" yaml:"inference"`
	Render       RenderConfig    `mapstructure:"render" yaml:"render"`
	Cache        CacheConfig     `mapstructure:"cache" yaml:"cache"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting" yaml:"rate_limiting"`
	Security     SecurityConfig  `mapstructure:"security" yaml:"security"`
	Logging      LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes" yaml:"max_header_bytes"`
}

// DatabaseConfig contains the results store settings
type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
}

// InferenceConfig contains the remote classifier settings
type InferenceConfig struct {
	URL            string        `mapstructure:"url" yaml:"url"`
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RateLimit      float64       `mapstructure:"rate_limit" yaml:"rate_limit"`
	Burst          int           `mapstructure:"burst" yaml:"burst"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`
	UserAgent      string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// RenderConfig contains the display boxes used by the renderers
type RenderConfig struct {
	SpectrogramWidth float64 `mapstructure:"spectrogram_width" yaml:"spectrogram_width"`
	DefaultMaxWidth  float64 `mapstructure:"default_max_width" yaml:"default_max_width"`
	DefaultMaxHeight float64 `mapstructure:"default_max_height" yaml:"default_max_height"`
	CompactMaxWidth  float64 `mapstructure:"compact_max_width" yaml:"compact_max_width"`
	WaveformWidth    float64 `mapstructure:"waveform_width" yaml:"waveform_width"`
	WaveformHeight   float64 `mapstructure:"waveform_height" yaml:"waveform_height"`
	TopPredictions   int     `mapstructure:"top_predictions" yaml:"top_predictions"`
}

// CacheConfig contains render cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	MaxSizeMB int64         `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled" yaml:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst" yaml:"burst"`
}

// SecurityConfig contains CORS settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors" yaml:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}
