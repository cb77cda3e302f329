// Package intake is the HTTP endpoint the landing page posts leads to when
// it runs against a remote sink.
package intake

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/emony/landing/internal/logger"
	"github.com/emony/landing/internal/submit"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Options configures the intake server.
type Options struct {
	Addr      string
	PerMinute int
	Sink      submit.Submitter
}

// NewRouter builds the gin engine with logging, recovery, CORS and rate
// limiting.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.LoggerWithWriter(logger.Default.Writer(logger.LevelInfo)),
		gin.RecoveryWithWriter(logger.Default.Writer(logger.LevelError)),
		CORS(),
	)

	handlers := NewHandlers(opts.Sink)
	router.GET("/healthz", handlers.HealthCheck)

	api := router.Group("/api", NewLimiter(opts.PerMinute).Middleware())
	api.POST("/leads/:kind", handlers.CreateLead)
	return router
}

// CORS lets the browser landing page post from any origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Serve runs the server until ctx is done, then shuts it down gracefully.
func Serve(ctx context.Context, opts Options) error {
	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("intake listening on %s", opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("intake server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down intake server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("intake stopped")
	return nil
}
