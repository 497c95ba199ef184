package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FEATUREVIZ_SERVER_PORT
const EnvPrefix = "FEATUREVIZ"

// DefaultPath is where Init looks for the settings file
const DefaultPath = "./config/settings.yaml"

// DefaultInferenceURL is the hosted audio classifier
const DefaultInferenceURL = "https://oscar2697--audio-cnn-audioclassifier-inference.modal.run/"

var (
	once    sync.Once
	initErr error
)

// Init initializes the global configuration once per process
func Init() error {
	once.Do(func() {
		initErr = setup(viper.GetViper(), filepath.Clean(DefaultPath))
	})
	return initErr
}

// Load reads configuration from path into a fresh viper instance. A missing
// file is not an error; defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	if err := setup(v, path); err != nil {
		return nil, err
	}
	return unmarshal(v)
}

// GetConfig returns the global configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	return unmarshal(viper.GetViper())
}

func setup(v *viper.Viper, path string) error {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !os.IsNotExist(err) && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}
	return nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// GetString returns a string value from the process configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// Validate rejects unusable values and fills in auto-correctable ones
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Inference.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid inference.max_upload_bytes: %d", c.Inference.MaxUploadBytes)
	}
	if c.Inference.RateLimit < 0 {
		return fmt.Errorf("invalid inference.rate_limit: %v", c.Inference.RateLimit)
	}

	r := &c.Render
	for name, v := range map[string]float64{
		"spectrogram_width":  r.SpectrogramWidth,
		"default_max_width":  r.DefaultMaxWidth,
		"default_max_height": r.DefaultMaxHeight,
		"compact_max_width":  r.CompactMaxWidth,
		"waveform_width":     r.WaveformWidth,
		"waveform_height":    r.WaveformHeight,
	} {
		if v <= 0 {
			return fmt.Errorf("invalid render.%s: %v", name, v)
		}
	}
	if r.TopPredictions <= 0 {
		r.TopPredictions = 3
	}

	if c.RateLimiting.Burst <= 0 {
		c.RateLimiting.Burst = 1
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		c.Logging.Format = "text"
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 2*time.Minute)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_header_bytes", 1048576)

	// Results store defaults
	v.SetDefault("database.enabled", true)
	v.SetDefault("database.path", "./data/featureviz.db")
	v.SetDefault("database.verbose", false)

	// Classifier defaults
	v.SetDefault("inference.url", DefaultInferenceURL)
	v.SetDefault("inference.timeout", 90*time.Second)
	v.SetDefault("inference.rate_limit", 1.0)
	v.SetDefault("inference.burst", 2)
	v.SetDefault("inference.max_upload_bytes", 32<<20)
	v.SetDefault("inference.user_agent", "featureviz/1.0")

	// Render defaults
	v.SetDefault("render.spectrogram_width", 960.0)
	v.SetDefault("render.default_max_width", 500.0)
	v.SetDefault("render.default_max_height", 220.0)
	v.SetDefault("render.compact_max_width", 128.0)
	v.SetDefault("render.waveform_width", 600.0)
	v.SetDefault("render.waveform_height", 300.0)
	v.SetDefault("render.top_predictions", 3)

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_size_mb", 64)
	v.SetDefault("cache.ttl", 30*time.Minute)

	// Rate limiting defaults
	v.SetDefault("rate_limiting.enabled", true)
	v.SetDefault("rate_limiting.requests_per_second", 10.0)
	v.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	v.SetDefault("security.enable_cors", true)
	v.SetDefault("security.cors_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
