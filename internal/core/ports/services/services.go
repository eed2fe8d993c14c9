package services

import (
	"context"
	"time"

	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/ledgerforge/glposting/internal/core/rules"
	"github.com/ledgerforge/glposting/internal/dto"
	"github.com/shopspring/decimal"
)

// PostingSvcFacade orchestrates converting source transactions into balanced journal
// entries and reversing them.
type PostingSvcFacade interface {
	// Post converts the rule's transaction into a balanced journal entry, allocates a
	// journal number and persists header plus lines atomically with status POSTED.
	Post(ctx context.Context, tenantID string, rule rules.PostingRule, actorID string) (*domain.JournalEntry, error)

	// Reverse voids a posted entry by appending a new entry with every line's
	// debit/credit flipped. Rejects entries that are not POSTED.
	Reverse(ctx context.Context, tenantID, entryID, reason, actorID string) (*domain.JournalEntry, error)

	// GetEntryByID retrieves an entry with its lines, scoped to the tenant.
	GetEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves the tenant's entries, newest first.
	ListEntries(ctx context.Context, tenantID string, limit, offset int) ([]domain.JournalEntry, error)
}

// NumberingSvcFacade is the numbering authority: collision-free, monotonically
// increasing, prefixed document numbers per tenant and document type.
type NumberingSvcFacade interface {
	// Generate derives the next formatted number. Empty prefix selects the built-in
	// default for the document type; width <= 0 selects the default padding.
	Generate(ctx context.Context, tenantID string, docType domain.DocumentType, prefix string, width int) (string, error)

	// Issue generates the next number for a caller-owned document type and records it
	// in the source document registry.
	Issue(ctx context.Context, tenantID string, docType domain.DocumentType, prefix string, width int, actorID string) (string, error)
}

// ResolverSvcFacade maps semantic account roles to concrete ledger accounts.
type ResolverSvcFacade interface {
	// Resolve returns the tenant's account for the role: the tenant's explicit mapping
	// if one exists, otherwise the account matching the system default code for the
	// role. Fails with ErrUnresolvedAccount when neither exists.
	Resolve(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.ChartOfAccount, error)
}

// LedgerSvcFacade is the read side over posted journal data.
type LedgerSvcFacade interface {
	AccountBalance(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error)
	TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error)
	StatementOfAccount(ctx context.Context, tenantID, accountID string, from, to time.Time) (*domain.StatementOfAccount, error)
}

// AccountSvcFacade manages a tenant's chart of accounts and role mappings.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, actorID string) (*domain.ChartOfAccount, error)
	GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.ChartOfAccount, error)
	ListAccounts(ctx context.Context, tenantID string) ([]domain.ChartOfAccount, error)
	SetRoleMapping(ctx context.Context, tenantID string, req dto.SetRoleMappingRequest, actorID string) error
}

// TenantSvcFacade provisions tenants.
type TenantSvcFacade interface {
	// CreateTenant creates the tenant and seeds its default chart of accounts.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, actorID string) (*domain.Tenant, error)
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// ServiceContainer bundles all service facades for dependency injection.
type ServiceContainer struct {
	Tenant    TenantSvcFacade
	Account   AccountSvcFacade
	Resolver  ResolverSvcFacade
	Numbering NumberingSvcFacade
	Posting   PostingSvcFacade
	Ledger    LedgerSvcFacade
}
