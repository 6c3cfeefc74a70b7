package services

import (
	"github.com/SscSPs/bond_catalog/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"github.com/SscSPs/bond_catalog/internal/platform/config"
	"github.com/SscSPs/bond_catalog/internal/platform/metrics"
)

// Upstreams bundles the external data sources the services call.
type Upstreams struct {
	ExchangeRates providers.ExchangeRateProvider
	Indicators    providers.IndicatorProvider
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, upstreams Upstreams, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Bond = NewBondService(repos.BondRepo)
	container.Summary = NewBondSummaryService(repos.BondRepo, nil)
	container.StaticData = NewBondSeedService(repos.BondRepo)

	rateOptions := []ExchangeRateServiceOption{
		WithBondReader(repos.BondRepo),
		WithRateMetrics(m),
	}
	if repos.RateCache != nil {
		rateOptions = append(rateOptions, WithRateCache(repos.RateCache, cfg.FXCacheTTL))
	}
	container.ExchangeRate = NewExchangeRateService(upstreams.ExchangeRates, rateOptions...)
	container.Macro = NewMacroIndicatorService(upstreams.Indicators)

	return container
}
