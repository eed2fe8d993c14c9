package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/core/services"
	"github.com/ledgerforge/glposting/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	tenantID        string
	actorID         string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.tenantID = uuid.NewString()
	suite.actorID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "6100",
		Name:        "Rent Expense",
		AccountType: domain.Expense,
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, "6100").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.ChartOfAccount")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal(suite.tenantID, account.TenantID)
	suite.Equal("6100", account.Code)
	suite.True(account.IsActive)
	suite.Equal(suite.actorID, account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	existing := domain.ChartOfAccount{AccountID: uuid.NewString(), Code: "6100"}
	req := dto.CreateAccountRequest{Code: "6100", Name: "Rent", AccountType: domain.Expense}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, "6100").Return(&existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSetRoleMapping_Success() {
	ctx := context.Background()
	target := domain.ChartOfAccount{
		AccountID: uuid.NewString(),
		TenantID:  suite.tenantID,
		Code:      "1250",
		IsActive:  true,
	}
	req := dto.SetRoleMappingRequest{Role: domain.RoleAccountsReceivable, AccountID: target.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, target.AccountID).Return(&target, nil).Once()
	suite.mockAccountRepo.On("UpsertRoleMapping", ctx, mock.MatchedBy(func(m domain.AccountRoleMapping) bool {
		return m.TenantID == suite.tenantID && m.Role == domain.RoleAccountsReceivable && m.AccountID == target.AccountID
	})).Return(nil).Once()

	err := suite.service.SetRoleMapping(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSetRoleMapping_UnknownRole() {
	req := dto.SetRoleMappingRequest{Role: domain.AccountRole("PETTY_CASH"), AccountID: uuid.NewString()}

	err := suite.service.SetRoleMapping(context.Background(), suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpsertRoleMapping", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSetRoleMapping_InactiveAccount() {
	ctx := context.Background()
	inactive := domain.ChartOfAccount{AccountID: uuid.NewString(), TenantID: suite.tenantID, Code: "1250", IsActive: false}
	req := dto.SetRoleMappingRequest{Role: domain.RoleAccountsReceivable, AccountID: inactive.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, inactive.AccountID).Return(&inactive, nil).Once()

	err := suite.service.SetRoleMapping(ctx, suite.tenantID, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
