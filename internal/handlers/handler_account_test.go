package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kenzhang87-cpu/networth-tracker/internal/apperrors"
	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	portssvc "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/services"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dto"
	"github.com/kenzhang87-cpu/networth-tracker/internal/handlers"
	"github.com/kenzhang87-cpu/networth-tracker/internal/platform/config"
	"github.com/kenzhang87-cpu/networth-tracker/internal/utils/chartscale"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) ListBalances(ctx context.Context, userID string) ([]domain.BalanceEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceEntry), args.Error(1)
}

func (m *MockBalanceService) UpsertBalance(ctx context.Context, req dto.UpsertBalanceRequest, userID string) (*domain.BalanceEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceEntry), args.Error(1)
}

func (m *MockBalanceService) DeleteBalance(ctx context.Context, balanceID string, userID string) error {
	args := m.Called(ctx, balanceID, userID)
	return args.Error(0)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ImportLedger(ctx context.Context, userID string, text string) (domain.ImportSummary, error) {
	args := m.Called(ctx, userID, text)
	return args.Get(0).(domain.ImportSummary), args.Error(1)
}

func (m *MockLedgerService) ExportLedger(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock SeriesService ---
type MockSeriesService struct {
	mock.Mock
}

func (m *MockSeriesService) NetWorthSeries(ctx context.Context, userID string) ([]domain.TimeSeriesPoint, chartscale.Scale, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(chartscale.Scale), args.Error(2)
	}
	return args.Get(0).([]domain.TimeSeriesPoint), args.Get(1).(chartscale.Scale), args.Error(2)
}

func (m *MockSeriesService) CategoryRollup(ctx context.Context, userID string) ([]domain.CategoryRollupRow, []time.Time, chartscale.Scale, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Get(2).(chartscale.Scale), args.Error(3)
	}
	return args.Get(0).([]domain.CategoryRollupRow), args.Get(1).([]time.Time), args.Get(2).(chartscale.Scale), args.Error(3)
}

var _ portssvc.SeriesSvcFacade = (*MockSeriesService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	userID             string
}

// generateTestToken creates a dummy JWT for testing.
func generateTestToken(t interface{ FailNow() }, userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.FailNow()
	}
	return token
}

func newTestRouter(container *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		IsProduction:      true, // no swagger routes under test
	}
	handlers.RegisterRoutes(r, cfg, container)
	return r
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.mockAccountService = new(MockAccountService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Balance: new(MockBalanceService),
		Ledger:  new(MockLedgerService),
		Series:  new(MockSeriesService),
		User:    new(MockUserService),
	})
	suite.userID = uuid.NewString()
}

func (suite *AccountHandlerTestSuite) authedRequest(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T(), suite.userID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	reqBody := dto.CreateAccountRequest{Name: "Checking", Category: "cash"}
	created := &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Checking",
		Category:  domain.CategoryCash,
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, reqBody, suite.userID).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.authedRequest(http.MethodPost, "/api/v1/accounts", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal(domain.Asset, resp.AccountType)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingName() {
	w := suite.authedRequest(http.MethodPost, "/api/v1/accounts", []byte(`{"category":"cash"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), UserID: suite.userID, Name: "Checking", Category: domain.CategoryCash},
		{AccountID: uuid.NewString(), UserID: suite.userID, Name: "Mortgage", Category: domain.CategoryMortgage},
	}
	suite.mockAccountService.On("ListAccounts", mock.Anything, suite.userID).Return(accounts, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(domain.Liability, resp[1].AccountType)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFoundOnForeignAccount() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID, suite.userID).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)

	// Foreign accounts surface as 404, not 403, so account ids cannot be probed.
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Success() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("DeleteAccount", mock.Anything, accountID, suite.userID).Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *AccountHandlerTestSuite) TestRequestWithoutToken_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestRequestWithGarbageToken_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
