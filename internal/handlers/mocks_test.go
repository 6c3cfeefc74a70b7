package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bond_catalog/internal/core/domain"
	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"github.com/SscSPs/bond_catalog/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BondService ---
type MockBondService struct {
	mock.Mock
}

func (m *MockBondService) bond(args mock.Arguments) (*domain.Bond, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bond), args.Error(1)
}

func (m *MockBondService) bonds(args mock.Arguments) ([]domain.Bond, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bond), args.Error(1)
}

func (m *MockBondService) GetBondByID(ctx context.Context, bondID int64) (*domain.Bond, error) {
	return m.bond(m.Called(ctx, bondID))
}
func (m *MockBondService) ListBonds(ctx context.Context) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx))
}
func (m *MockBondService) CreateBond(ctx context.Context, req dto.BondRequest) (*domain.Bond, error) {
	return m.bond(m.Called(ctx, req))
}
func (m *MockBondService) UpdateBond(ctx context.Context, bondID int64, req dto.BondRequest) (*domain.Bond, error) {
	return m.bond(m.Called(ctx, bondID, req))
}
func (m *MockBondService) DeleteBond(ctx context.Context, bondID int64) error {
	return m.Called(ctx, bondID).Error(0)
}
func (m *MockBondService) FindByIssuer(ctx context.Context, issuer string) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, issuer))
}
func (m *MockBondService) FindByRating(ctx context.Context, rating string) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, rating))
}
func (m *MockBondService) FindByCouponRateAtLeast(ctx context.Context, minRate decimal.Decimal) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, minRate))
}
func (m *MockBondService) FindByCouponRateRange(ctx context.Context, minRate, maxRate decimal.Decimal) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, minRate, maxRate))
}
func (m *MockBondService) FindByMaturityBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, start, end))
}
func (m *MockBondService) FindByMaturityAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, date))
}
func (m *MockBondService) FindByIssueDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, date))
}
func (m *MockBondService) FindByIssueDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, start, end))
}
func (m *MockBondService) FindByFaceValueAtLeast(ctx context.Context, minValue decimal.Decimal) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, minValue))
}
func (m *MockBondService) FindByFaceValueBetween(ctx context.Context, minValue, maxValue decimal.Decimal) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, minValue, maxValue))
}
func (m *MockBondService) FindByStatus(ctx context.Context, status string) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, status))
}

// Ensure mock implements the interface
var _ portssvc.BondSvcFacade = (*MockBondService)(nil)

// --- Mock BondSummaryService ---
type MockBondSummaryService struct {
	mock.Mock
}

func (m *MockBondSummaryService) GetSummary(ctx context.Context) (*domain.BondSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BondSummary), args.Error(1)
}

var _ portssvc.BondSummarySvc = (*MockBondSummaryService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetRate(ctx context.Context, baseCode, targetCode string) (*domain.FXRate, error) {
	args := m.Called(ctx, baseCode, targetCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FXRate), args.Error(1)
}

func (m *MockExchangeRateService) ValueBondIn(ctx context.Context, bondID int64, targetCode string) (*domain.BondValuation, error) {
	args := m.Called(ctx, bondID, targetCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BondValuation), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock MacroIndicatorService ---
type MockMacroIndicatorService struct {
	mock.Mock
}

func (m *MockMacroIndicatorService) indicator(args mock.Arguments) (*domain.MacroIndicator, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MacroIndicator), args.Error(1)
}

func (m *MockMacroIndicatorService) GDP(ctx context.Context, countryCode, year string) (*domain.MacroIndicator, error) {
	return m.indicator(m.Called(ctx, countryCode, year))
}
func (m *MockMacroIndicatorService) Inflation(ctx context.Context, countryCode, year string) (*domain.MacroIndicator, error) {
	return m.indicator(m.Called(ctx, countryCode, year))
}
func (m *MockMacroIndicatorService) Indicator(ctx context.Context, countryCode, indicatorID, year string) (*domain.MacroIndicator, error) {
	return m.indicator(m.Called(ctx, countryCode, indicatorID, year))
}

var _ portssvc.MacroIndicatorSvc = (*MockMacroIndicatorService)(nil)

func mustDate(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
