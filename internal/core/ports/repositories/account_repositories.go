package repositories

import (
	"context"

	"github.com/ledgerforge/glposting/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves an account by id, scoped to the tenant.
	FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.ChartOfAccount, error)

	// FindAccountByCode retrieves an account by its code, scoped to the tenant.
	FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.ChartOfAccount, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by id, scoped to the tenant.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.ChartOfAccount, error)

	// ListAccounts retrieves the tenant's chart of accounts ordered by code.
	ListAccounts(ctx context.Context, tenantID string) ([]domain.ChartOfAccount, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.ChartOfAccount) error

	// SaveAccounts inserts several accounts atomically (default chart seeding).
	SaveAccounts(ctx context.Context, accounts []domain.ChartOfAccount) error
}

// RoleMappingRepository defines operations on tenant role-to-account overrides.
type RoleMappingRepository interface {
	// FindRoleMapping retrieves the tenant's mapping for a role, ErrNotFound if absent.
	FindRoleMapping(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.AccountRoleMapping, error)

	// UpsertRoleMapping creates or replaces the tenant's mapping for a role.
	UpsertRoleMapping(ctx context.Context, mapping domain.AccountRoleMapping) error
}

// AccountRepositoryFacade combines all chart-of-accounts repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	RoleMappingRepository
}
