package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kenzhang87-cpu/networth-tracker/internal/apperrors"
	"github.com/kenzhang87-cpu/networth-tracker/internal/core/domain"
	portssvc "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/services"
	"github.com/kenzhang87-cpu/networth-tracker/internal/core/services"
	"github.com/kenzhang87-cpu/networth-tracker/internal/dto"
)

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	userID   string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Checking", Category: "Cash"}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Checking" && a.Category == domain.CategoryCash && a.UserID == suite.userID && a.AccountID != ""
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("Checking", account.Name)
	suite.Equal(domain.CategoryCash, account.Category)
	suite.Equal(domain.Asset, account.Type())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsCategory() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Misc"}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Category == domain.CategoryOther
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryOther, account.Category)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BlankName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "   "}

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Checking"}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Forbidden() {
	ctx := context.Background()
	accountID := uuid.NewString()
	other := &domain.Account{AccountID: accountID, UserID: uuid.NewString(), Name: "Theirs"}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(other, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, accountID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, accountID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, UserID: suite.userID, Name: "Old", Category: domain.CategoryCash}

	newName := "New"
	newCategory := "mortgage"
	req := dto.UpdateAccountRequest{Name: &newName, Category: &newCategory}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == accountID && a.Name == "New" && a.Category == domain.CategoryMortgage
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, accountID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("New", account.Name)
	suite.Equal(domain.Liability, account.Type())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NameOnly() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, UserID: suite.userID, Name: "Old", Category: domain.CategoryCash}

	newName := "Renamed"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Renamed" && a.Category == domain.CategoryCash
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, accountID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryCash, account.Category)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, UserID: suite.userID, Name: "Doomed"}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteAccount", ctx, accountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, accountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Forbidden() {
	ctx := context.Background()
	accountID := uuid.NewString()
	other := &domain.Account{AccountID: accountID, UserID: uuid.NewString(), Name: "Theirs"}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(other, nil).Once()

	err := suite.service.DeleteAccount(ctx, accountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
