package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/SscSPs/bond_catalog/internal/core/ports/providers"
	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
)

// DefaultIndicatorYear is used when a caller does not name a year.
const DefaultIndicatorYear = "2022"

// macroIndicatorService implements the MacroIndicatorSvc interface
type macroIndicatorService struct {
	BaseService
	provider providers.IndicatorProvider
}

// NewMacroIndicatorService creates the indicator lookup service.
func NewMacroIndicatorService(provider providers.IndicatorProvider) portssvc.MacroIndicatorSvc {
	return &macroIndicatorService{provider: provider}
}

var _ portssvc.MacroIndicatorSvc = (*macroIndicatorService)(nil)

func (s *macroIndicatorService) GDP(ctx context.Context, countryCode, year string) (*domain.MacroIndicator, error) {
	return s.Indicator(ctx, countryCode, domain.IndicatorGDP, year)
}

func (s *macroIndicatorService) Inflation(ctx context.Context, countryCode, year string) (*domain.MacroIndicator, error) {
	return s.Indicator(ctx, countryCode, domain.IndicatorInflation, year)
}

func (s *macroIndicatorService) Indicator(ctx context.Context, countryCode, indicatorID, year string) (*domain.MacroIndicator, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if !isLetters(countryCode, 2, 3) {
		return nil, apperrors.NewValidationError("Country must be a 2 or 3 letter ISO code, e.g. USA, NGA, GBR.")
	}
	indicatorID = strings.TrimSpace(indicatorID)
	if indicatorID == "" {
		return nil, apperrors.NewValidationError("Indicator must not be blank.")
	}
	year = strings.TrimSpace(year)
	if year == "" {
		year = DefaultIndicatorYear
	}
	if !isDigits(year, 4) {
		return nil, apperrors.NewValidationError("Year must be a 4-digit number.")
	}

	value, err := s.provider.IndicatorValue(ctx, countryCode, indicatorID, year)
	if err != nil {
		s.LogError(ctx, err, "Indicator lookup failed",
			slog.String("country", countryCode),
			slog.String("indicator", indicatorID),
			slog.String("year", year))
		if errors.Is(err, apperrors.ErrUpstream) {
			return nil, err
		}
		return nil, apperrors.NewUpstreamError("Macro indicator service unavailable.", err)
	}

	name, ok := domain.IndicatorNames[indicatorID]
	if !ok {
		name = indicatorID
	}
	return &domain.MacroIndicator{
		Country:       countryCode,
		Year:          year,
		IndicatorID:   indicatorID,
		IndicatorName: name,
		Value:         value,
	}, nil
}

func isLetters(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
