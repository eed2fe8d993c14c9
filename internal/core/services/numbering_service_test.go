package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NumberingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNumberingRepository
	service  portssvc.NumberingSvcFacade
	tenantID string
}

func (suite *NumberingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNumberingRepository)
	suite.service = services.NewNumberingService(suite.mockRepo)
	suite.tenantID = uuid.NewString()
}

func (suite *NumberingServiceTestSuite) TestGenerate_FirstNumber() {
	ctx := context.Background()

	suite.mockRepo.On("HighestNumber", ctx, suite.tenantID, domain.DocSalesInvoice, "INV-").Return("", nil).Once()
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocSalesInvoice, "INV-0001").Return(false, nil).Once()

	number, err := suite.service.Generate(ctx, suite.tenantID, domain.DocSalesInvoice, "INV-", 4)

	suite.Require().NoError(err)
	suite.Equal("INV-0001", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestGenerate_DefaultPrefixAndWidth() {
	ctx := context.Background()

	suite.mockRepo.On("HighestNumber", ctx, suite.tenantID, domain.DocJournalEntry, "JE-").Return("JE-00041", nil).Once()
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocJournalEntry, "JE-00042").Return(false, nil).Once()

	number, err := suite.service.Generate(ctx, suite.tenantID, domain.DocJournalEntry, "", 0)

	suite.Require().NoError(err)
	suite.Equal("JE-00042", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestGenerate_WidthIsAFloorNotACap() {
	ctx := context.Background()

	// Sequence grows past the padding width instead of wrapping or failing.
	suite.mockRepo.On("HighestNumber", ctx, suite.tenantID, domain.DocSalesInvoice, "INV-").Return("INV-9999", nil).Once()
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocSalesInvoice, "INV-10000").Return(false, nil).Once()

	number, err := suite.service.Generate(ctx, suite.tenantID, domain.DocSalesInvoice, "INV-", 4)

	suite.Require().NoError(err)
	suite.Equal("INV-10000", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestGenerate_BumpsOnCollision() {
	ctx := context.Background()

	suite.mockRepo.On("HighestNumber", ctx, suite.tenantID, domain.DocJournalEntry, "JE-").Return("JE-00007", nil).Once()
	// A concurrent post took JE-00008 between the scan and our check.
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocJournalEntry, "JE-00008").Return(true, nil).Once()
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocJournalEntry, "JE-00009").Return(false, nil).Once()

	number, err := suite.service.Generate(ctx, suite.tenantID, domain.DocJournalEntry, "", 0)

	suite.Require().NoError(err)
	suite.Equal("JE-00009", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestGenerate_UnparsableHighestRestartsSequence() {
	ctx := context.Background()

	suite.mockRepo.On("HighestNumber", ctx, suite.tenantID, domain.DocJournalEntry, "JE-").Return("JE-LEGACY", nil).Once()
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocJournalEntry, "JE-00001").Return(false, nil).Once()

	number, err := suite.service.Generate(ctx, suite.tenantID, domain.DocJournalEntry, "", 0)

	suite.Require().NoError(err)
	suite.Equal("JE-00001", number)
}

func (suite *NumberingServiceTestSuite) TestGenerate_MissingTenant() {
	_, err := suite.service.Generate(context.Background(), "", domain.DocJournalEntry, "", 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.mockRepo.AssertNotCalled(suite.T(), "HighestNumber", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NumberingServiceTestSuite) TestGenerate_UnknownDocType() {
	_, err := suite.service.Generate(context.Background(), suite.tenantID, domain.DocumentType("NAPKIN"), "", 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
}

func (suite *NumberingServiceTestSuite) TestGenerate_RetryExhausted() {
	ctx := context.Background()

	suite.mockRepo.On("HighestNumber", ctx, suite.tenantID, domain.DocJournalEntry, "JE-").Return("", nil).Once()
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocJournalEntry, mock.AnythingOfType("string")).Return(true, nil)

	_, err := suite.service.Generate(ctx, suite.tenantID, domain.DocJournalEntry, "", 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNumberRetryExhausted)
}

func (suite *NumberingServiceTestSuite) TestIssue_RecordsNumber() {
	ctx := context.Background()

	suite.mockRepo.On("HighestNumber", ctx, suite.tenantID, domain.DocCreditNote, "CN-").Return("CN-00002", nil).Once()
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocCreditNote, "CN-00003").Return(false, nil).Once()
	suite.mockRepo.On("RecordDocumentNumber", ctx, mock.MatchedBy(func(doc domain.SourceDocument) bool {
		return doc.TenantID == suite.tenantID && doc.DocType == domain.DocCreditNote && doc.DocNumber == "CN-00003"
	})).Return(nil).Once()

	number, err := suite.service.Issue(ctx, suite.tenantID, domain.DocCreditNote, "", 0, "user-1")

	suite.Require().NoError(err)
	suite.Equal("CN-00003", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestIssue_RegeneratesOnDuplicateRecord() {
	ctx := context.Background()

	suite.mockRepo.On("HighestNumber", ctx, suite.tenantID, domain.DocQuotation, "QT-").Return("", nil).Twice()
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocQuotation, "QT-00001").Return(false, nil).Once()
	suite.mockRepo.On("RecordDocumentNumber", ctx, mock.MatchedBy(func(doc domain.SourceDocument) bool {
		return doc.DocNumber == "QT-00001"
	})).Return(apperrors.ErrDuplicate).Once()

	// Second pass: the registry now holds QT-00001, so the scan moves on.
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocQuotation, "QT-00001").Return(true, nil).Once()
	suite.mockRepo.On("NumberExists", ctx, suite.tenantID, domain.DocQuotation, "QT-00002").Return(false, nil).Once()
	suite.mockRepo.On("RecordDocumentNumber", ctx, mock.MatchedBy(func(doc domain.SourceDocument) bool {
		return doc.DocNumber == "QT-00002"
	})).Return(nil).Once()

	number, err := suite.service.Issue(ctx, suite.tenantID, domain.DocQuotation, "", 0, "user-1")

	suite.Require().NoError(err)
	suite.Equal("QT-00002", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestIssue_RejectsJournalEntryType() {
	_, err := suite.service.Issue(context.Background(), suite.tenantID, domain.DocJournalEntry, "", 0, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "RecordDocumentNumber", mock.Anything, mock.Anything)
}

func TestNumberingService(t *testing.T) {
	suite.Run(t, new(NumberingServiceTestSuite))
}
