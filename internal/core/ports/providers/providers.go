// Package providers declares the upstream data sources the services depend on.
package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRateProvider converts one unit of a currency into another.
type ExchangeRateProvider interface {
	Convert(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (decimal.Decimal, error)
}

// IndicatorProvider looks up a single macroeconomic observation.
// A nil value with a nil error means the source has no data point.
type IndicatorProvider interface {
	IndicatorValue(ctx context.Context, countryCode, indicatorID, year string) (*decimal.Decimal, error)
}
