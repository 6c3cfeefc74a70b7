package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BondRepository ---
type MockBondRepository struct {
	mock.Mock
}

func (m *MockBondRepository) bond(args mock.Arguments) (*domain.Bond, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bond), args.Error(1)
}

func (m *MockBondRepository) bonds(args mock.Arguments) ([]domain.Bond, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bond), args.Error(1)
}

func (m *MockBondRepository) FindBondByID(ctx context.Context, bondID int64) (*domain.Bond, error) {
	return m.bond(m.Called(ctx, bondID))
}

func (m *MockBondRepository) ListBonds(ctx context.Context) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx))
}

func (m *MockBondRepository) ExistsByNameIssuerMaturity(ctx context.Context, name, issuer string, maturityDate time.Time) (bool, error) {
	args := m.Called(ctx, name, issuer, maturityDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockBondRepository) SaveBond(ctx context.Context, bond domain.Bond) (*domain.Bond, error) {
	args := m.Called(ctx, bond)
	if fn, ok := args.Get(0).(func(context.Context, domain.Bond) *domain.Bond); ok {
		return fn(ctx, bond), args.Error(1)
	}
	return m.bond(args)
}

func (m *MockBondRepository) UpdateBond(ctx context.Context, bondID int64, bond domain.Bond) (*domain.Bond, error) {
	args := m.Called(ctx, bondID, bond)
	if fn, ok := args.Get(0).(func(context.Context, int64, domain.Bond) *domain.Bond); ok {
		return fn(ctx, bondID, bond), args.Error(1)
	}
	return m.bond(args)
}

func (m *MockBondRepository) DeleteBond(ctx context.Context, bondID int64) error {
	args := m.Called(ctx, bondID)
	return args.Error(0)
}

func (m *MockBondRepository) FindByIssuerContaining(ctx context.Context, issuer string) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, issuer))
}

func (m *MockBondRepository) FindByRating(ctx context.Context, rating string) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, rating))
}

func (m *MockBondRepository) FindByCouponRateAtLeast(ctx context.Context, minRate decimal.Decimal) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, minRate))
}

func (m *MockBondRepository) FindByCouponRateBetween(ctx context.Context, minRate, maxRate decimal.Decimal) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, minRate, maxRate))
}

func (m *MockBondRepository) FindByMaturityDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, start, end))
}

func (m *MockBondRepository) FindByMaturityDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, date))
}

func (m *MockBondRepository) FindByIssueDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, date))
}

func (m *MockBondRepository) FindByIssueDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, start, end))
}

func (m *MockBondRepository) FindByFaceValueAtLeast(ctx context.Context, minValue decimal.Decimal) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, minValue))
}

func (m *MockBondRepository) FindByFaceValueBetween(ctx context.Context, minValue, maxValue decimal.Decimal) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, minValue, maxValue))
}

func (m *MockBondRepository) FindByStatus(ctx context.Context, status domain.BondStatus, today time.Time) ([]domain.Bond, error) {
	return m.bonds(m.Called(ctx, status, today))
}

func (m *MockBondRepository) CountBonds(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBondRepository) AverageCouponRate(ctx context.Context) (decimal.NullDecimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

func (m *MockBondRepository) CountDistinctIssuers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBondRepository) MaxRating(ctx context.Context) (*string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockBondRepository) FindHighestCouponBond(ctx context.Context) (*domain.Bond, error) {
	return m.bond(m.Called(ctx))
}

func (m *MockBondRepository) FindLowestCouponBond(ctx context.Context) (*domain.Bond, error) {
	return m.bond(m.Called(ctx))
}

func (m *MockBondRepository) FindEarliestMaturityBond(ctx context.Context) (*domain.Bond, error) {
	return m.bond(m.Called(ctx))
}

func (m *MockBondRepository) CountMaturingBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock RateCache ---
type MockRateCache struct {
	mock.Mock
}

func (m *MockRateCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRateCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// --- Mock upstream providers ---
type MockExchangeRateProvider struct {
	mock.Mock
}

func (m *MockExchangeRateProvider) Convert(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockIndicatorProvider struct {
	mock.Mock
}

func (m *MockIndicatorProvider) IndicatorValue(ctx context.Context, countryCode, indicatorID, year string) (*decimal.Decimal, error) {
	args := m.Called(ctx, countryCode, indicatorID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decimal.Decimal), args.Error(1)
}

// --- helpers ---

func mustDate(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedClock(day string) func() time.Time {
	t := mustDate(day).Add(15 * time.Hour)
	return func() time.Time { return t }
}
