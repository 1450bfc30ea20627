package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/walletforge/wallet_tracker_backend/internal/core/accounting"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
	"github.com/walletforge/wallet_tracker_backend/internal/handlers"
	"github.com/walletforge/wallet_tracker_backend/internal/platform/config"
)

// --- Mock PortfolioService ---
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) GetPortfolioSummary(ctx context.Context, userID string, period domain.Period) (*domain.PortfolioSummary, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PortfolioSvcFacade = (*MockPortfolioService)(nil)

// --- Test Suite ---
type PortfolioHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockPortfolioService *MockPortfolioService
	jwtSecret            string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *PortfolioHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "wtb-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *PortfolioHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	cfg := &config.Config{
		JWTSecret:     suite.jwtSecret,
		IsProduction:  true, // no swagger routes in tests
		RateLimit:     "1000-M",
		AuthRateLimit: "1000-M",
	}

	suite.mockPortfolioService = new(MockPortfolioService)
	services := &portssvc.ServiceContainer{
		Portfolio: suite.mockPortfolioService,
	}

	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *PortfolioHandlerTestSuite) getSummary(token, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/summary"+query, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PortfolioHandlerTestSuite) TestGetPortfolioSummary_Success() {
	userID := "user-1"
	converted := domain.WalletBalance{
		Income:  decimal.NewFromInt(1100),
		Expense: decimal.Zero,
		Net:     decimal.NewFromInt(1100),
	}
	summary := &domain.PortfolioSummary{
		CurrencyCode: "USD",
		Total:        decimal.NewFromInt(1100),
		TotalIncome:  decimal.NewFromInt(1100),
		TotalExpense: decimal.Zero,
		Positions: []domain.WalletPosition{
			{
				WalletID:     "w-eur",
				Name:         "Euro account",
				CurrencyCode: "EUR",
				Native: domain.WalletBalance{
					Income:  decimal.NewFromInt(1000),
					Expense: decimal.Zero,
					Net:     decimal.NewFromInt(1000),
				},
				Converted: &converted,
			},
		},
	}

	suite.mockPortfolioService.On("GetPortfolioSummary", mock.Anything, userID, domain.DefaultPeriod()).
		Return(summary, nil).Once()

	w := suite.getSummary(suite.generateTestToken(userID), "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PortfolioSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.CurrencyCode)
	suite.True(resp.Total.Equal(decimal.NewFromInt(1100)))
	suite.Require().Len(resp.Positions, 1)
	suite.Require().NotNil(resp.Positions[0].ConvertedNet)
	suite.False(resp.Positions[0].RateUnavailable)
	suite.mockPortfolioService.AssertExpectations(suite.T())
}

func (suite *PortfolioHandlerTestSuite) TestGetPortfolioSummary_MonthQueryParam() {
	userID := "user-1"
	june, err := domain.MonthPeriod("2025-06")
	suite.Require().NoError(err)

	summary := &domain.PortfolioSummary{CurrencyCode: "USD", Total: decimal.Zero}
	suite.mockPortfolioService.On("GetPortfolioSummary", mock.Anything, userID, june).
		Return(summary, nil).Once()

	w := suite.getSummary(suite.generateTestToken(userID), "?month=2025-06")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPortfolioService.AssertExpectations(suite.T())
}

func (suite *PortfolioHandlerTestSuite) TestGetPortfolioSummary_InvalidMonth() {
	w := suite.getSummary(suite.generateTestToken("user-1"), "?month=june")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPortfolioService.AssertNotCalled(suite.T(), "GetPortfolioSummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortfolioHandlerTestSuite) TestGetPortfolioSummary_Unauthorized() {
	w := suite.getSummary("", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *PortfolioHandlerTestSuite) TestGetPortfolioSummary_UnresolvedWallets() {
	userID := "user-1"
	summary := &domain.PortfolioSummary{
		CurrencyCode: "USD",
		Total:        decimal.NewFromInt(500),
		Positions: []domain.WalletPosition{
			{
				WalletID:     "w-chf",
				Name:         "Swiss stash",
				CurrencyCode: "CHF",
				Native:       domain.WalletBalance{Income: decimal.NewFromInt(300), Net: decimal.NewFromInt(300)},
			},
		},
		UnresolvedWalletIDs: []string{"w-chf"},
	}
	suite.mockPortfolioService.On("GetPortfolioSummary", mock.Anything, userID, domain.DefaultPeriod()).
		Return(summary, nil).Once()

	w := suite.getSummary(suite.generateTestToken(userID), "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PortfolioSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"w-chf"}, resp.UnresolvedWalletIDs)
	suite.Require().Len(resp.Positions, 1)
	suite.True(resp.Positions[0].RateUnavailable)
	suite.Nil(resp.Positions[0].ConvertedNet)
}

func (suite *PortfolioHandlerTestSuite) TestGetPortfolioSummary_InvalidTransactionData() {
	userID := "user-1"
	suite.mockPortfolioService.On("GetPortfolioSummary", mock.Anything, userID, domain.DefaultPeriod()).
		Return(nil, &accounting.InvalidTransactionError{TransactionID: "bad", Reason: "amount must be non-negative"}).Once()

	w := suite.getSummary(suite.generateTestToken(userID), "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func TestPortfolioHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PortfolioHandlerTestSuite))
}
