package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"github.com/SscSPs/bond_catalog/internal/core/services"
	"github.com/SscSPs/bond_catalog/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockProvider *MockExchangeRateProvider
	mockCache    *MockRateCache
	mockBonds    *MockBondRepository
	metrics      *metrics.Metrics
	service      portssvc.ExchangeRateSvcFacade
	ctx          context.Context
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockExchangeRateProvider)
	suite.mockCache = new(MockRateCache)
	suite.mockBonds = new(MockBondRepository)
	suite.metrics = metrics.New()
	suite.service = services.NewExchangeRateService(suite.mockProvider,
		services.WithRateCache(suite.mockCache, time.Minute),
		services.WithBondReader(suite.mockBonds),
		services.WithRateMetrics(suite.metrics),
	)
	suite.ctx = context.Background()
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_CacheMissFetchesAndStores() {
	suite.mockCache.On("Get", mock.Anything, "fx:USD:NGN").Return(nil, portsrepo.ErrCacheMiss).Once()
	suite.mockProvider.On("Convert", mock.Anything, "USD", "NGN").Return(dec("1550.25"), nil).Once()
	suite.mockCache.On("Set", mock.Anything, "fx:USD:NGN", []byte("1550.25"), time.Minute).Return(nil).Once()

	rate, err := suite.service.GetRate(suite.ctx, "USD", "NGN")

	suite.Require().NoError(err)
	suite.Equal("USD", rate.FromCurrencyCode)
	suite.Equal("NGN", rate.ToCurrencyCode)
	suite.True(dec("1550.25").Equal(rate.Rate))
	suite.mockCache.AssertExpectations(suite.T())
	suite.mockProvider.AssertExpectations(suite.T())
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.RateCacheLookups.WithLabelValues(metrics.CacheMiss)))
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_LowercaseHitsNormalizedCacheEntry() {
	suite.mockCache.On("Get", mock.Anything, "fx:USD:NGN").Return([]byte("1550.25"), nil).Once()

	rate, err := suite.service.GetRate(suite.ctx, "usd", "ngn")

	suite.Require().NoError(err)
	suite.Equal("USD", rate.FromCurrencyCode)
	suite.Equal("NGN", rate.ToCurrencyCode)
	suite.True(dec("1550.25").Equal(rate.Rate))
	suite.mockProvider.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.RateCacheLookups.WithLabelValues(metrics.CacheHit)))
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_CacheFailureIsBypassed() {
	suite.mockCache.On("Get", mock.Anything, "fx:EUR:USD").Return(nil, errors.New("redis: connection refused")).Once()
	suite.mockProvider.On("Convert", mock.Anything, "EUR", "USD").Return(dec("1.08"), nil).Once()
	suite.mockCache.On("Set", mock.Anything, "fx:EUR:USD", mock.Anything, time.Minute).Return(errors.New("redis: connection refused")).Once()

	rate, err := suite.service.GetRate(suite.ctx, "EUR", "USD")

	suite.Require().NoError(err)
	suite.True(dec("1.08").Equal(rate.Rate))
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_UpstreamFailure() {
	suite.mockCache.On("Get", mock.Anything, "fx:USD:XXX").Return(nil, portsrepo.ErrCacheMiss).Once()
	suite.mockProvider.On("Convert", mock.Anything, "USD", "XXX").
		Return(dec("0"), apperrors.NewUpstreamError("exchange rate API reported failure: invalid currency", nil)).Once()

	rate, err := suite.service.GetRate(suite.ctx, "USD", "XXX")

	suite.Nil(rate)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.Equal(502, apperrors.StatusCode(err))
	suite.mockCache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_TransportErrorBecomesUpstream() {
	suite.mockCache.On("Get", mock.Anything, "fx:USD:GBP").Return(nil, portsrepo.ErrCacheMiss).Once()
	suite.mockProvider.On("Convert", mock.Anything, "USD", "GBP").Return(dec("0"), context.DeadlineExceeded).Once()

	_, err := suite.service.GetRate(suite.ctx, "USD", "GBP")

	suite.ErrorIs(err, apperrors.ErrUpstream)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_BlankCode() {
	_, err := suite.service.GetRate(suite.ctx, " ", "NGN")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCache.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestValueBondIn_ExactMultiplication() {
	suite.mockBonds.On("FindBondByID", mock.Anything, int64(4)).Return(&domain.Bond{
		BondID: 4, Name: "Emerging Market Bond", Currency: "NGN", FaceValue: dec("1000.00"),
	}, nil).Once()
	suite.mockCache.On("Get", mock.Anything, "fx:NGN:USD").Return([]byte("0.000645"), nil).Once()

	v, err := suite.service.ValueBondIn(suite.ctx, 4, "usd")

	suite.Require().NoError(err)
	suite.Equal(int64(4), v.BondID)
	suite.Equal("Emerging Market Bond", v.BondName)
	suite.Equal("NGN", v.FromCurrencyCode)
	suite.Equal("USD", v.ToCurrencyCode)
	suite.True(dec("1000.00").Equal(v.OriginalFaceValue))
	suite.Equal("0.645", v.ConvertedFaceValue.String())
}

func (suite *ExchangeRateServiceTestSuite) TestValueBondIn_MissingCurrencyFailsBeforeUpstream() {
	suite.mockBonds.On("FindBondByID", mock.Anything, int64(8)).Return(&domain.Bond{
		BondID: 8, Name: "No Currency", FaceValue: dec("100"),
	}, nil).Once()

	_, err := suite.service.ValueBondIn(suite.ctx, 8, "USD")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProvider.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything)
	suite.mockCache.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestValueBondIn_NonPositiveFaceValue() {
	suite.mockBonds.On("FindBondByID", mock.Anything, int64(9)).Return(&domain.Bond{
		BondID: 9, Currency: "USD", FaceValue: dec("0"),
	}, nil).Once()

	_, err := suite.service.ValueBondIn(suite.ctx, 9, "EUR")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProvider.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestValueBondIn_UnknownBond() {
	suite.mockBonds.On("FindBondByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ValueBondIn(suite.ctx, 404, "EUR")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---
func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
