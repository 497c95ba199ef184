package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/featureviz-api/api"
	"github.com/killallgit/featureviz-api/api/types"
	"github.com/killallgit/featureviz-api/internal/database"
	"github.com/killallgit/featureviz-api/internal/render/featuremap"
	"github.com/killallgit/featureviz-api/internal/render/view"
	"github.com/killallgit/featureviz-api/internal/render/waveform"
	"github.com/killallgit/featureviz-api/internal/services/cache"
	"github.com/killallgit/featureviz-api/internal/services/inference"
	"github.com/killallgit/featureviz-api/internal/services/results"
	"github.com/killallgit/featureviz-api/internal/services/session"
	"github.com/killallgit/featureviz-api/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the featureviz web server with the configured settings.

The server hosts the upload page at /, the JSON and image API under
/api/v1 and the Swagger UI at /docs.

Example:
  featureviz serve
  featureviz serve --port 9090
  featureviz serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	host, port := serverHost, serverPort
	if host == "" {
		host = cfg.Server.Host
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	deps, cleanup, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	address := fmt.Sprintf("%s:%d", host, port)
	srv := api.NewServer(address, cfg)
	srv.SetDependencies(deps)
	if err := srv.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.WithFields(log.Fields{
		"address":    address,
		"classifier": cfg.Inference.URL,
		"database":   cfg.Database.Enabled,
		"cache":      cfg.Cache.Enabled,
	}).Info("Server is ready to handle requests")

	var runErr error
	select {
	case <-stop:
		log.Info("Shutting down server...")
	case <-cmd.Context().Done():
		log.Info("Shutting down server...")
	case runErr = <-serverErr:
		log.WithError(runErr).Error("Server failed, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.Info("Server gracefully stopped")
	return runErr
}

// buildDependencies wires the services the handlers need. cleanup releases
// them in reverse order.
func buildDependencies(cfg *config.Config) (*types.Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &types.Dependencies{
		ViewOptions:    viewOptions(cfg.Render),
		MaxUploadBytes: cfg.Inference.MaxUploadBytes,
	}

	var saver session.ResultSaver
	if cfg.Database.Enabled {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to initialize database: %w", err)
		}
		closers = append(closers, func() {
			if err := db.Close(); err != nil {
				log.WithError(err).Warn("Failed to close database")
			}
		})
		if err := db.Migrate(); err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("failed to migrate database: %w", err)
		}
		deps.DB = db
		deps.ResultService = results.NewService(results.NewRepository(db.DB))
		saver = deps.ResultService
	}

	if cfg.Cache.Enabled {
		mc := cache.NewMemoryCache(cfg.Cache.MaxSizeMB)
		closers = append(closers, mc.Stop)
		deps.Cache = mc
	}

	deps.Session = session.New(inference.NewClient(classifierConfig(cfg.Inference)), saver)

	return deps, cleanup, nil
}

func viewOptions(r config.RenderConfig) view.Options {
	return view.Options{
		TopN: r.TopPredictions,
		Limits: featuremap.Limits{
			CompactMaxWidth:  r.CompactMaxWidth,
			SpectrogramWidth: r.SpectrogramWidth,
			DefaultMaxWidth:  r.DefaultMaxWidth,
			DefaultMaxHeight: r.DefaultMaxHeight,
		},
		Viewport: waveform.Viewport{Width: r.WaveformWidth, Height: r.WaveformHeight},
	}
}

func classifierConfig(c config.InferenceConfig) inference.Config {
	return inference.Config{
		URL:       c.URL,
		Timeout:   c.Timeout,
		RateLimit: c.RateLimit,
		Burst:     c.Burst,
		UserAgent: c.UserAgent,
	}
}
