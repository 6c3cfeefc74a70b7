package handlers

import (
	"fmt"

	"github.com/SscSPs/bond_catalog/cmd/docs"
	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"github.com/SscSPs/bond_catalog/internal/middleware"
	"github.com/SscSPs/bond_catalog/internal/platform/config"
	"github.com/SscSPs/bond_catalog/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// m may be nil, in which case /metrics is not served.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	health HealthCheck,
) error {
	registerHealthRoute(r, health)

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	v1 := r.Group("/api/v1")

	RegisterBondRoutes(v1, services.Bond, services.Summary)

	var extra []gin.HandlerFunc
	if cfg.ExternalRateLimit != "" {
		limiter, err := middleware.NewRateLimiter(cfg.ExternalRateLimit)
		if err != nil {
			return fmt.Errorf("EXTERNAL_RATE_LIMIT: %w", err)
		}
		extra = append(extra, middleware.RateLimit(limiter))
	}
	RegisterExternalRoutes(v1, services.ExchangeRate, services.Macro, extra...)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
