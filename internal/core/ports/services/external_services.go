package services

import (
	"context"

	"github.com/SscSPs/bond_catalog/internal/core/domain"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRate returns the conversion factor from base to target, served from cache when possible.
	GetRate(ctx context.Context, baseCode, targetCode string) (*domain.FXRate, error)
}

// BondValuationSvc expresses stored bonds in other currencies.
type BondValuationSvc interface {
	// ValueBondIn converts the face value of a bond into the target currency.
	ValueBondIn(ctx context.Context, bondID int64, targetCode string) (*domain.BondValuation, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	BondValuationSvc
}

// MacroIndicatorSvc looks up country-level economic indicators.
// An empty year selects the default year.
type MacroIndicatorSvc interface {
	GDP(ctx context.Context, countryCode, year string) (*domain.MacroIndicator, error)
	Inflation(ctx context.Context, countryCode, year string) (*domain.MacroIndicator, error)
	Indicator(ctx context.Context, countryCode, indicatorID, year string) (*domain.MacroIndicator, error)
}
