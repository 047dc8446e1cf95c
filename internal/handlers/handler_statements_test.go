package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/greekrode/erpnext/internal/apperrors"
	"github.com/greekrode/erpnext/internal/core/domain"
	portssvc "github.com/greekrode/erpnext/internal/core/ports/services"
	"github.com/greekrode/erpnext/internal/dto"
	"github.com/greekrode/erpnext/internal/handlers"
	"github.com/greekrode/erpnext/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

var _ portssvc.StatementService = (*MockStatementService)(nil)

func (m *MockStatementService) BalanceSheet(ctx context.Context, filters domain.StatementFilters) (*domain.FinancialReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}

func (m *MockStatementService) ProfitAndLoss(ctx context.Context, filters domain.StatementFilters) (*domain.FinancialReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}

// --- Test Suite ---
type StatementHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockStatementService *MockStatementService
	jwtSecret            string
	jwtIssuer            string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *StatementHandlerTestSuite) generateTestToken(userID, issuer string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *StatementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.jwtIssuer = "erpnext-reports-test"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret, suite.jwtIssuer))

	suite.mockStatementService = new(MockStatementService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterStatementRoutes(v1, suite.mockStatementService)
}

func (suite *StatementHandlerTestSuite) get(url string, authorized bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("tester", suite.jwtIssuer))
	}
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *StatementHandlerTestSuite) TestGetBalanceSheetSuccess() {
	row := domain.AccountRow{Account: "Cash", AccountName: "Cash", HasValue: true}
	row.SetValue("2024_25", decimal.NewFromInt(500))
	report := &domain.FinancialReport{
		Columns: []domain.Column{{Fieldname: "account_name"}, {Fieldname: "2024_25"}},
		Rows:    []domain.AccountRow{row},
	}

	suite.mockStatementService.On("BalanceSheet",
		mock.Anything,
		mock.MatchedBy(func(f domain.StatementFilters) bool {
			return f.Company == "acme" &&
				f.FromFiscalYear == "2024-25" &&
				f.ToFiscalYear == "2024-25" &&
				f.Periodicity == domain.Yearly
		}),
	).Return(report, nil).Once()

	w := suite.get("/api/v1/reports/balance-sheet?company=acme&from_fiscal_year=2024-25&to_fiscal_year=2024-25", true)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.FinancialReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 1)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestGetProfitAndLossMissingFiscalYears() {
	w := suite.get("/api/v1/reports/profit-and-loss?company=acme", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStatementService.AssertNotCalled(suite.T(), "ProfitAndLoss", mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestGetBalanceSheetUnauthorized() {
	w := suite.get("/api/v1/reports/balance-sheet?from_fiscal_year=2024-25&to_fiscal_year=2024-25", false)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *StatementHandlerTestSuite) TestGetBalanceSheetWrongIssuer() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/balance-sheet?from_fiscal_year=2024-25&to_fiscal_year=2024-25", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("tester", "someone-else"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockStatementService.AssertNotCalled(suite.T(), "BalanceSheet", mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestGetProfitAndLossNotFound() {
	suite.mockStatementService.On("ProfitAndLoss", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/api/v1/reports/profit-and-loss?company=acme&from_fiscal_year=2031-32&to_fiscal_year=2031-32", true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *StatementHandlerTestSuite) TestGetBalanceSheetServiceFailure() {
	suite.mockStatementService.On("BalanceSheet", mock.Anything, mock.Anything).
		Return(nil, errors.New("boom")).Once()

	w := suite.get("/api/v1/reports/balance-sheet?company=acme&from_fiscal_year=2024-25&to_fiscal_year=2024-25", true)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *StatementHandlerTestSuite) TestGetBalanceSheetInvalidDateRange() {
	w := suite.get("/api/v1/reports/balance-sheet?company=acme&from_fiscal_year=2024-25&to_fiscal_year=2024-25&filter_based_on=Date+Range", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStatementService.AssertNotCalled(suite.T(), "BalanceSheet", mock.Anything, mock.Anything)
}

func TestStatementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}
