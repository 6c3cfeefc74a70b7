package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/bond_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// AllHealthy combines checks; the first failure wins. Nil checks are skipped.
func AllHealthy(checks ...HealthCheck) HealthCheck {
	return func(ctx context.Context) error {
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}

// registerHealthRoute serves GET /health. With a check configured the store and
// cache are pinged and any unreachable dependency answers 503.
func registerHealthRoute(r *gin.Engine, check HealthCheck) {
	r.GET("/health", func(c *gin.Context) {
		if check == nil {
			c.String(http.StatusOK, "OK")
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := check(ctx); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
			c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
			return
		}
		c.String(http.StatusOK, "OK")
	})
}
