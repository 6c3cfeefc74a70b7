package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/SscSPs/bond_catalog/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"github.com/SscSPs/bond_catalog/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// DefaultFXCacheTTL is used when no TTL option is given.
const DefaultFXCacheTTL = 10 * time.Minute

// exchangeRateService implements the ExchangeRateSvcFacade interface
type exchangeRateService struct {
	BaseService
	provider providers.ExchangeRateProvider
	cache    portsrepo.RateCache
	bonds    portsrepo.BondReader
	ttl      time.Duration
	metrics  *metrics.Metrics
}

// ExchangeRateServiceOption is a functional option for configuring the exchange rate service
type ExchangeRateServiceOption func(*exchangeRateService)

// WithRateCache enables caching of looked-up rates.
func WithRateCache(cache portsrepo.RateCache, ttl time.Duration) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.cache = cache
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithBondReader enables bond valuation.
func WithBondReader(bonds portsrepo.BondReader) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.bonds = bonds
	}
}

// WithRateMetrics records cache hits and misses.
func WithRateMetrics(m *metrics.Metrics) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.metrics = m
	}
}

// NewExchangeRateService creates a new exchange rate service with the provided options
func NewExchangeRateService(provider providers.ExchangeRateProvider, options ...ExchangeRateServiceOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		provider: provider,
		ttl:      DefaultFXCacheTTL,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// rateCacheKey builds the shared cache key for a normalized pair.
func rateCacheKey(baseCode, targetCode string) string {
	return "fx:" + baseCode + ":" + targetCode
}

// GetRate returns the conversion factor from baseCode to targetCode. Codes are upper-cased
// before the cache lookup, so "usd"/"ngn" and "USD"/"NGN" share one entry. Concurrent misses
// for the same pair each call the provider and the last write wins.
func (s *exchangeRateService) GetRate(ctx context.Context, baseCode, targetCode string) (*domain.FXRate, error) {
	baseCode = strings.ToUpper(strings.TrimSpace(baseCode))
	targetCode = strings.ToUpper(strings.TrimSpace(targetCode))
	if baseCode == "" || targetCode == "" {
		return nil, apperrors.NewValidationError("Both currency codes are required.")
	}

	key := rateCacheKey(baseCode, targetCode)
	if rate, ok := s.cachedRate(ctx, key); ok {
		return &domain.FXRate{FromCurrencyCode: baseCode, ToCurrencyCode: targetCode, Rate: rate}, nil
	}

	rate, err := s.provider.Convert(ctx, baseCode, targetCode)
	if err != nil {
		s.LogError(ctx, err, "Exchange rate lookup failed", slog.String("from", baseCode), slog.String("to", targetCode))
		if errors.Is(err, apperrors.ErrUpstream) {
			return nil, err
		}
		return nil, apperrors.NewUpstreamError("Exchange rate service unavailable.", err)
	}

	s.storeRate(ctx, key, rate)
	s.LogDebug(ctx, "Exchange rate fetched", slog.String("from", baseCode), slog.String("to", targetCode), slog.String("rate", rate.String()))
	return &domain.FXRate{FromCurrencyCode: baseCode, ToCurrencyCode: targetCode, Rate: rate}, nil
}

// cachedRate reads a rate; any cache failure is treated as a miss.
func (s *exchangeRateService) cachedRate(ctx context.Context, key string) (decimal.Decimal, bool) {
	if s.cache == nil {
		return decimal.Zero, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, portsrepo.ErrCacheMiss) {
			s.metrics.ObserveCacheLookup(metrics.CacheMiss)
		} else {
			s.metrics.ObserveCacheLookup(metrics.CacheError)
			s.LogWarn(ctx, "Rate cache read failed, bypassing", slog.String("key", key), slog.String("error", err.Error()))
		}
		return decimal.Zero, false
	}
	rate, err := decimal.NewFromString(string(raw))
	if err != nil {
		s.metrics.ObserveCacheLookup(metrics.CacheError)
		s.LogWarn(ctx, "Rate cache entry is corrupt, bypassing", slog.String("key", key))
		return decimal.Zero, false
	}
	s.metrics.ObserveCacheLookup(metrics.CacheHit)
	return rate, true
}

func (s *exchangeRateService) storeRate(ctx context.Context, key string, rate decimal.Decimal) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, []byte(rate.String()), s.ttl); err != nil {
		s.LogWarn(ctx, "Rate cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// ValueBondIn converts a bond's face value into targetCode. Stored-data problems are
// reported before any upstream call is made.
func (s *exchangeRateService) ValueBondIn(ctx context.Context, bondID int64, targetCode string) (*domain.BondValuation, error) {
	if s.bonds == nil {
		return nil, apperrors.NewInternalServerError("bond valuation is not configured", nil)
	}
	if bondID <= 0 {
		return nil, apperrors.NewValidationError("Bond ID must be a positive integer.")
	}
	if strings.TrimSpace(targetCode) == "" {
		return nil, apperrors.NewValidationError("Target currency is required.")
	}

	bond, err := s.bonds.FindBondByID(ctx, bondID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(bond.Currency) == "" {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Bond %d has no currency set.", bondID))
	}
	if !bond.FaceValue.IsPositive() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Bond %d has no face value set.", bondID))
	}

	fx, err := s.GetRate(ctx, bond.Currency, targetCode)
	if err != nil {
		return nil, err
	}

	return &domain.BondValuation{
		BondID:             bond.BondID,
		BondName:           bond.Name,
		FromCurrencyCode:   fx.FromCurrencyCode,
		ToCurrencyCode:     fx.ToCurrencyCode,
		Rate:               fx.Rate,
		OriginalFaceValue:  bond.FaceValue,
		ConvertedFaceValue: bond.FaceValue.Mul(fx.Rate),
	}, nil
}
