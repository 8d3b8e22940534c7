// Package server exposes the matcher over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Config holds the HTTP server settings.
type Config struct {
	Listen         string          `mapstructure:"listen"`
	AllowedOrigins []string        `mapstructure:"allowed-origins"`
	RequestTimeout time.Duration   `mapstructure:"request-timeout"`
	RateLimit      RateLimitConfig `mapstructure:"rate-limit"`
	Release        bool            `mapstructure:"release"`
}

// RateLimitConfig configures the per-client token bucket. A non-positive
// PerSecond disables limiting.
type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per-second"`
	Burst     int     `mapstructure:"burst"`
}

func DefaultConfig() Config {
	return Config{
		Listen:         ":8080",
		AllowedOrigins: []string{"http://localhost:3000"},
		RequestTimeout: 60 * time.Second,
		RateLimit:      RateLimitConfig{PerSecond: 2, Burst: 5},
	}
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("server listen address is required")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("server request timeout must not be negative, got %s", c.RequestTimeout)
	}
	if c.RateLimit.PerSecond > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("server rate limit burst must be at least 1, got %d", c.RateLimit.Burst)
	}
	return nil
}

// SetupRouter creates the gin engine with middleware and routes.
func SetupRouter(cfg Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	if cfg.RateLimit.PerSecond > 0 {
		v1.Use(RateLimitMiddleware(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst))
	}
	{
		v1.POST("/analyze", handler.Analyze)
		v1.POST("/score", handler.Score)
	}

	return router
}

// Run serves router on cfg.Listen until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, cfg Config, router http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("listen", cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
