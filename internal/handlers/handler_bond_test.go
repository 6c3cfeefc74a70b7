package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/SscSPs/bond_catalog/internal/dto"
	"github.com/SscSPs/bond_catalog/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BondHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBondService    *MockBondService
	mockSummaryService *MockBondSummaryService
}

func (suite *BondHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockBondService = new(MockBondService)
	suite.mockSummaryService = new(MockBondSummaryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBondRoutes(v1, suite.mockBondService, suite.mockSummaryService)
}

func (suite *BondHandlerTestSuite) TearDownTest() {
	suite.mockBondService.AssertExpectations(suite.T())
	suite.mockSummaryService.AssertExpectations(suite.T())
}

func TestBondHandler(t *testing.T) {
	suite.Run(t, new(BondHandlerTestSuite))
}

func (suite *BondHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BondHandlerTestSuite) decodeBonds(w *httptest.ResponseRecorder) []dto.BondResponse {
	var got []dto.BondResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func (suite *BondHandlerTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func decEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func testBond(id int64, name, issuer, rating, coupon, maturity string) domain.Bond {
	return domain.Bond{
		BondID:       id,
		Name:         name,
		Issuer:       issuer,
		Rating:       rating,
		IssueDate:    mustDate("2020-01-01"),
		MaturityDate: mustDate(maturity),
		Currency:     "USD",
		FaceValue:    decimal.NewFromInt(1000),
		CouponRate:   decimal.RequireFromString(coupon),
		Status:       domain.BondStatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			LastUpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

var (
	bondA = testBond(1, "A", "Corp A", "BBB", "5.00", "2028-01-01")
	bondB = testBond(2, "B", "Gov B", "AAA", "3.00", "2030-01-01")
)

const validBondJSON = `{
	"name": "Green Energy Bond",
	"issuer": "GreenFuture Ltd",
	"rating": "A",
	"issueDate": "2021-08-10",
	"maturityDate": "2029-03-15",
	"currency": "USD",
	"faceValue": 2000.00,
	"couponRate": "5.00"
}`

// --- CRUD ---

func (suite *BondHandlerTestSuite) TestListBonds_Empty() {
	suite.mockBondService.On("ListBonds", mock.Anything).Return([]domain.Bond{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *BondHandlerTestSuite) TestListBonds_Success() {
	suite.mockBondService.On("ListBonds", mock.Anything).Return([]domain.Bond{bondA, bondB}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds", "")
	suite.Equal(http.StatusOK, w.Code)
	got := suite.decodeBonds(w)
	suite.Require().Len(got, 2)
	suite.Equal("A", got[0].Name)
	suite.Equal("2028-01-01", got[0].MaturityDate)
	suite.Equal("Active", got[0].Status)
	suite.True(got[0].CouponRate.Equal(decimal.NewFromInt(5)))
}

func (suite *BondHandlerTestSuite) TestListBonds_StoreFailureHidesDetails() {
	suite.mockBondService.On("ListBonds", mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query bonds", assertErr("connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds", "")
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("internal server error", suite.errorMessage(w))
}

func (suite *BondHandlerTestSuite) TestGetBondByID() {
	suite.mockBondService.On("GetBondByID", mock.Anything, int64(1)).Return(&bondA, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/1", "")
	suite.Equal(http.StatusOK, w.Code)
	var got dto.BondResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(int64(1), got.BondID)
}

func (suite *BondHandlerTestSuite) TestGetBondByID_NotFound() {
	suite.mockBondService.On("GetBondByID", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("bond with ID 99 not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/99", "")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("bond with ID 99 not found", suite.errorMessage(w))
}

func (suite *BondHandlerTestSuite) TestGetBondByID_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/bonds/abc", "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBondService.AssertNotCalled(suite.T(), "GetBondByID", mock.Anything, mock.Anything)
}

func (suite *BondHandlerTestSuite) TestCreateBond_Success() {
	created := testBond(31, "Green Energy Bond", "GreenFuture Ltd", "A", "5.00", "2029-03-15")
	suite.mockBondService.On("CreateBond", mock.Anything, mock.MatchedBy(func(req dto.BondRequest) bool {
		return req.Name == "Green Energy Bond" && req.BondID == nil &&
			req.FaceValue.Equal(decimal.NewFromInt(2000)) && req.CouponRate.Equal(decimal.NewFromInt(5))
	})).Return(&created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/bonds", validBondJSON)
	suite.Equal(http.StatusCreated, w.Code)
	var got dto.BondResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(int64(31), got.BondID)
}

func (suite *BondHandlerTestSuite) TestCreateBond_WithIDIsBadRequest() {
	suite.mockBondService.On("CreateBond", mock.Anything, mock.MatchedBy(func(req dto.BondRequest) bool {
		return req.BondID != nil && *req.BondID == 5
	})).Return(nil, apperrors.NewValidationError("New bonds must not carry a bondID.")).Once()

	body := strings.Replace(validBondJSON, "{", `{"bondID": 5,`, 1)
	w := suite.do(http.MethodPost, "/api/v1/bonds", body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BondHandlerTestSuite) TestCreateBond_Duplicate() {
	suite.mockBondService.On("CreateBond", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConflictError("bond already exists")).Once()

	w := suite.do(http.MethodPost, "/api/v1/bonds", validBondJSON)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *BondHandlerTestSuite) TestCreateBond_BindingFailures() {
	cases := map[string]string{
		"malformed json":      `{"name":`,
		"missing name":        strings.Replace(validBondJSON, `"name": "Green Energy Bond",`, "", 1),
		"bad issue date":      strings.Replace(validBondJSON, "2021-08-10", "10/08/2021", 1),
		"bad currency":        strings.Replace(validBondJSON, `"USD"`, `"US1"`, 1),
		"zero face value":     strings.Replace(validBondJSON, "2000.00", "0", 1),
		"negative face value": strings.Replace(validBondJSON, "2000.00", "-5", 1),
		"negative coupon":     strings.Replace(validBondJSON, `"5.00"`, `"-0.01"`, 1),
		"missing face value":  strings.Replace(validBondJSON, `"faceValue": 2000.00,`, "", 1),
	}
	for name, body := range cases {
		suite.Run(name, func() {
			w := suite.do(http.MethodPost, "/api/v1/bonds", body)
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	suite.mockBondService.AssertNotCalled(suite.T(), "CreateBond", mock.Anything, mock.Anything)
}

func (suite *BondHandlerTestSuite) TestCreateBond_ZeroCouponIsAllowed() {
	zero := testBond(40, "Zero", "Z", "A", "0", "2029-03-15")
	suite.mockBondService.On("CreateBond", mock.Anything, mock.Anything).Return(&zero, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/bonds", strings.Replace(validBondJSON, `"5.00"`, `"0"`, 1))
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *BondHandlerTestSuite) TestUpdateBond() {
	updated := bondA
	updated.Name = "Green Energy Bond"
	suite.mockBondService.On("UpdateBond", mock.Anything, int64(1), mock.AnythingOfType("dto.BondRequest")).Return(&updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/bonds/1", validBondJSON)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *BondHandlerTestSuite) TestUpdateBond_NotFound() {
	suite.mockBondService.On("UpdateBond", mock.Anything, int64(77), mock.Anything).
		Return(nil, apperrors.NewNotFoundError("bond with ID 77 not found")).Once()

	w := suite.do(http.MethodPut, "/api/v1/bonds/77", validBondJSON)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BondHandlerTestSuite) TestDeleteBond() {
	suite.mockBondService.On("DeleteBond", mock.Anything, int64(1)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/bonds/1", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "message")
}

func (suite *BondHandlerTestSuite) TestDeleteBond_NotFound() {
	suite.mockBondService.On("DeleteBond", mock.Anything, int64(2)).
		Return(apperrors.NewNotFoundError("bond with ID 2 not found")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/bonds/2", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Filters ---

func (suite *BondHandlerTestSuite) TestFindByRating() {
	suite.mockBondService.On("FindByRating", mock.Anything, "AAA").Return([]domain.Bond{bondB}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/rating/AAA", "")
	suite.Equal(http.StatusOK, w.Code)
	got := suite.decodeBonds(w)
	suite.Require().Len(got, 1)
	suite.Equal("B", got[0].Name)
}

func (suite *BondHandlerTestSuite) TestFindByIssuer_BlankIsBadRequest() {
	suite.mockBondService.On("FindByIssuer", mock.Anything, " ").
		Return(nil, apperrors.NewValidationError("Issuer must not be blank.")).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/issuer/%20", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BondHandlerTestSuite) TestFindByCouponRateRange() {
	suite.mockBondService.On("FindByCouponRateRange", mock.Anything, decEq("3"), decEq("6")).
		Return([]domain.Bond{bondA, bondB}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/coupon-rate/3/6", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(suite.decodeBonds(w), 2)
}

func (suite *BondHandlerTestSuite) TestFindByCouponRateAtLeast() {
	suite.mockBondService.On("FindByCouponRateAtLeast", mock.Anything, decEq("4.5")).Return([]domain.Bond{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/coupon-rate/4.5", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *BondHandlerTestSuite) TestMalformedParametersNeverReachTheService() {
	paths := []string{
		"/api/v1/bonds/coupon-rate/abc",
		"/api/v1/bonds/coupon-rate/1/x",
		"/api/v1/bonds/maturing-between/2025-13-01/2026-01-01",
		"/api/v1/bonds/maturity-date/tomorrow",
		"/api/v1/bonds/issue-date/2024-02-30",
		"/api/v1/bonds/face-value/1e",
		"/api/v1/bonds/issued-between?start-date=2020-01-01",
		"/api/v1/bonds/face-value-between?min-value=100",
	}
	for _, path := range paths {
		suite.Run(path, func() {
			w := suite.do(http.MethodGet, path, "")
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.NotEmpty(suite.errorMessage(w))
		})
	}
	suite.Empty(suite.mockBondService.Calls)
}

func (suite *BondHandlerTestSuite) TestFindByMaturityBetween() {
	suite.mockBondService.On("FindByMaturityBetween", mock.Anything, mustDate("2028-01-01"), mustDate("2029-12-31")).
		Return([]domain.Bond{bondA}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/maturing-between/2028-01-01/2029-12-31", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(suite.decodeBonds(w), 1)
}

func (suite *BondHandlerTestSuite) TestFindByMaturityAfter_PastDateIsBadRequest() {
	suite.mockBondService.On("FindByMaturityAfter", mock.Anything, mustDate("2000-01-01")).
		Return(nil, apperrors.NewValidationError("Maturity date cannot be in the past.")).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/maturity-date/2000-01-01", "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Maturity date cannot be in the past.", suite.errorMessage(w))
}

func (suite *BondHandlerTestSuite) TestFindByIssueDateBetween() {
	suite.mockBondService.On("FindByIssueDateBetween", mock.Anything, mustDate("2019-01-01"), mustDate("2021-12-31")).
		Return([]domain.Bond{bondA}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/issued-between?start-date=2019-01-01&end-date=2021-12-31", "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *BondHandlerTestSuite) TestFindByIssueDateAfter() {
	suite.mockBondService.On("FindByIssueDateAfter", mock.Anything, mustDate("2019-06-01")).Return([]domain.Bond{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/issue-date/2019-06-01", "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *BondHandlerTestSuite) TestFindByFaceValue() {
	suite.mockBondService.On("FindByFaceValueAtLeast", mock.Anything, decEq("1000")).Return([]domain.Bond{bondA, bondB}, nil).Once()
	suite.mockBondService.On("FindByFaceValueBetween", mock.Anything, decEq("500"), decEq("1500.50")).Return([]domain.Bond{bondA}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/face-value/1000", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(suite.decodeBonds(w), 2)

	w = suite.do(http.MethodGet, "/api/v1/bonds/face-value-between?min-value=500&max-value=1500.50", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(suite.decodeBonds(w), 1)
}

func (suite *BondHandlerTestSuite) TestFindByStatus_EmptyResultSetsMessageHeader() {
	suite.mockBondService.On("FindByStatus", mock.Anything, "Defaulted").Return([]domain.Bond{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/status?status=Defaulted", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
	suite.Equal("No bonds found with status: Defaulted", w.Header().Get("X-Message"))
}

func (suite *BondHandlerTestSuite) TestFindByStatus_Match() {
	suite.mockBondService.On("FindByStatus", mock.Anything, "active").Return([]domain.Bond{bondA}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/status?status=active", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(w.Header().Get("X-Message"))
}

func (suite *BondHandlerTestSuite) TestFindByStatus_Invalid() {
	suite.mockBondService.On("FindByStatus", mock.Anything, "Expired").
		Return(nil, apperrors.NewValidationError("Invalid status: Expired")).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/status?status=Expired", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Summary ---

func (suite *BondHandlerTestSuite) TestGetSummary() {
	avg := decimal.NewFromInt(4)
	highest, lowest := decimal.NewFromInt(5), decimal.NewFromInt(3)
	maxRating, nameA, nameB := "BBB", "A", "B"
	next := mustDate("2028-01-01")
	suite.mockSummaryService.On("GetSummary", mock.Anything).Return(&domain.BondSummary{
		TotalBonds:            2,
		AvgCouponRate:         &avg,
		MaxRating:             &maxRating,
		UniqueIssuers:         2,
		HighestCoupon:         &highest,
		HighestCouponBondName: &nameA,
		LowestCoupon:          &lowest,
		LowestCouponBondName:  &nameB,
		NextMaturityBondName:  &nameA,
		NextMaturityBondDate:  &next,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/summary", "")
	suite.Equal(http.StatusOK, w.Code)

	var got map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(float64(2), got["totalBonds"])
	suite.Equal("5", got["highestCoupon"])
	suite.Equal("A", got["highestCouponBondName"])
	suite.Equal("A", got["nextMaturityBondName"])
	suite.Equal("2028-01-01", got["nextMaturityBondDate"])
	suite.Equal(float64(0), got["maturitiesInNext90Days"])
}

func (suite *BondHandlerTestSuite) TestGetSummary_EmptyCatalogHasNulls() {
	suite.mockSummaryService.On("GetSummary", mock.Anything).Return(&domain.BondSummary{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bonds/summary", "")
	suite.Equal(http.StatusOK, w.Code)

	var got map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(float64(0), got["totalBonds"])
	suite.Nil(got["avgCouponRate"])
	suite.Nil(got["maxRating"])
	suite.Nil(got["nextMaturityBondDate"])
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
