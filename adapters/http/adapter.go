// Package http exposes the calculation form as a small JSON API.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"interest-calc/core/engine"
)

// Config holds HTTP adapter configuration
type Config struct {
	// Address to listen on
	Address string

	// ReadTimeout for requests
	ReadTimeout time.Duration

	// WriteTimeout for responses
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration

	// AllowedOrigins for CORS; empty disables CORS
	AllowedOrigins []string

	// MaxBodySize limits request body size
	MaxBodySize int64

	// Version is reported by /version and /health
	Version string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		AllowedOrigins:  []string{"*"},
		MaxBodySize:     64 * 1024,
		Version:         "dev",
	}
}

// Adapter is the HTTP adapter
type Adapter struct {
	engine *engine.Engine
	config *Config
	logger *zap.Logger
}

// New creates a new HTTP adapter
func New(eng *engine.Engine, config *Config, logger *zap.Logger) *Adapter {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		engine: eng,
		config: config,
		logger: logger,
	}
}

// Router returns the HTTP handler
func (a *Adapter) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(a.logger))
	if len(a.config.AllowedOrigins) > 0 {
		r.Use(corsMiddleware(a.config.AllowedOrigins))
	}
	r.Use(limitBody(a.config.MaxBodySize))

	api := r.Group("/api")
	{
		api.GET("/health", a.handleHealth)
		api.GET("/version", a.handleVersion)
		api.POST("/calculate", a.handleCalculate)
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (a *Adapter) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         a.config.Address,
		Handler:      a.Router(),
		ReadTimeout:  a.config.ReadTimeout,
		WriteTimeout: a.config.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()
		a.logger.Info("http server shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
