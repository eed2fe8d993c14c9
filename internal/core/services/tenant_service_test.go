package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/core/services"
	"github.com/ledgerforge/glposting/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockTenantRepo  *MockTenantRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.TenantSvcFacade
	actorID         string
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewTenantService(suite.mockTenantRepo, suite.mockAccountRepo)
	suite.actorID = uuid.NewString()
}

func (suite *TenantServiceTestSuite) TestCreateTenant_SeedsDefaultChart() {
	ctx := context.Background()

	suite.mockTenantRepo.On("SaveTenant", ctx, mock.AnythingOfType("domain.Tenant")).Return(nil).Once()
	suite.mockAccountRepo.On("SaveAccounts", ctx, mock.MatchedBy(func(accounts []domain.ChartOfAccount) bool {
		if len(accounts) != len(domain.DefaultChart) {
			return false
		}
		codes := make(map[string]bool, len(accounts))
		for _, a := range accounts {
			codes[a.Code] = true
		}
		// Every semantic role's default code must be present.
		for _, entry := range domain.DefaultChart {
			if !codes[entry.Code] {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, dto.CreateTenantRequest{Name: "Acme Pte Ltd"}, suite.actorID)

	suite.Require().NoError(err)
	suite.NotEmpty(tenant.TenantID)
	suite.Equal("Acme Pte Ltd", tenant.Name)
	suite.True(tenant.IsActive)
	suite.mockTenantRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestCreateTenant_SaveFails() {
	ctx := context.Background()

	suite.mockTenantRepo.On("SaveTenant", ctx, mock.AnythingOfType("domain.Tenant")).Return(context.DeadlineExceeded).Once()

	_, err := suite.service.CreateTenant(ctx, dto.CreateTenantRequest{Name: "Acme"}, suite.actorID)

	suite.Require().Error(err)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccounts", mock.Anything, mock.Anything)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
