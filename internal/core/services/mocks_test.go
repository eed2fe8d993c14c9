package services_test

import (
	"context"
	"time"

	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveReversal(ctx context.Context, reversing domain.JournalEntry, lines []domain.JournalLine, originalEntryID string) error {
	args := m.Called(ctx, reversing, lines, originalEntryID)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	args := m.Called(ctx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.ChartOfAccount, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartOfAccount), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.ChartOfAccount) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) FindRoleMapping(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.AccountRoleMapping, error) {
	args := m.Called(ctx, tenantID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountRoleMapping), args.Error(1)
}

func (m *MockAccountRepository) UpsertRoleMapping(ctx context.Context, mapping domain.AccountRoleMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

// --- Mock NumberingRepository ---

type MockNumberingRepository struct {
	mock.Mock
}

var _ portsrepo.NumberingRepository = (*MockNumberingRepository)(nil)

func (m *MockNumberingRepository) HighestNumber(ctx context.Context, tenantID string, docType domain.DocumentType, prefix string) (string, error) {
	args := m.Called(ctx, tenantID, docType, prefix)
	return args.String(0), args.Error(1)
}

func (m *MockNumberingRepository) NumberExists(ctx context.Context, tenantID string, docType domain.DocumentType, number string) (bool, error) {
	args := m.Called(ctx, tenantID, docType, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockNumberingRepository) RecordDocumentNumber(ctx context.Context, doc domain.SourceDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) AccountBalanceAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) AccountBalanceBefore(ctx context.Context, tenantID, accountID string, before time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, accountID, before)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) TrialBalanceRows(ctx context.Context, tenantID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, tenantID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) StatementLines(ctx context.Context, tenantID, accountID string, from, to time.Time) ([]domain.StatementLine, error) {
	args := m.Called(ctx, tenantID, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementLine), args.Error(1)
}

// --- Mock TenantRepository ---

type MockTenantRepository struct {
	mock.Mock
}

var _ portsrepo.TenantRepository = (*MockTenantRepository)(nil)

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

// --- Mock ResolverService ---

type MockResolverService struct {
	mock.Mock
}

var _ portssvc.ResolverSvcFacade = (*MockResolverService)(nil)

func (m *MockResolverService) Resolve(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, tenantID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

// --- Mock NumberingService ---

type MockNumberingService struct {
	mock.Mock
}

var _ portssvc.NumberingSvcFacade = (*MockNumberingService)(nil)

func (m *MockNumberingService) Generate(ctx context.Context, tenantID string, docType domain.DocumentType, prefix string, width int) (string, error) {
	args := m.Called(ctx, tenantID, docType, prefix, width)
	return args.String(0), args.Error(1)
}

func (m *MockNumberingService) Issue(ctx context.Context, tenantID string, docType domain.DocumentType, prefix string, width int, actorID string) (string, error) {
	args := m.Called(ctx, tenantID, docType, prefix, width, actorID)
	return args.String(0), args.Error(1)
}
