package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	"github.com/ledgerforge/glposting/internal/models"
	"github.com/ledgerforge/glposting/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const selectAccountColumns = `
	account_id, tenant_id, code, name, account_type, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

const insertAccountQuery = `
	INSERT INTO accounts (
		account_id, tenant_id, code, name, account_type, description, is_active,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

func scanAccount(row pgx.Row) (*models.ChartOfAccount, error) {
	var m models.ChartOfAccount
	err := row.Scan(
		&m.AccountID,
		&m.TenantID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount inserts a single account. Returns ErrDuplicate when the tenant already
// has an account with the same code.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccount) error {
	m := mapping.ToModelAccount(account)
	_, err := r.Pool.Exec(ctx, insertAccountQuery,
		m.AccountID,
		m.TenantID,
		m.Code,
		m.Name,
		m.AccountType,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountID, err)
	}
	return nil
}

// SaveAccounts inserts several accounts atomically. Used when seeding a fresh tenant's
// default chart.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.ChartOfAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, account := range accounts {
		m := mapping.ToModelAccount(account)
		batch.Queue(insertAccountQuery,
			m.AccountID,
			m.TenantID,
			m.Code,
			m.Name,
			m.AccountType,
			m.Description,
			m.IsActive,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to execute account batch", err)
	}

	return r.Commit(ctx, tx)
}

// FindAccountByID retrieves an account by ID scoped to the tenant.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE tenant_id = $1 AND account_id = $2;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, tenantID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}

	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// FindAccountByCode retrieves an account by its code scoped to the tenant.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE tenant_id = $1 AND code = $2;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, tenantID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by code "+code, err)
	}

	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by ID, scoped to the tenant.
// Missing IDs are simply absent from the result map; the caller decides whether that
// is an error.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.ChartOfAccount{}, nil
	}

	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE tenant_id = $1 AND account_id = ANY($2);`

	rows, err := r.Pool.Query(ctx, query, tenantID, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.ChartOfAccount, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// ListAccounts retrieves the tenant's chart of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string) ([]domain.ChartOfAccount, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE tenant_id = $1 ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts for tenant "+tenantID, err)
	}
	defer rows.Close()

	accounts := []domain.ChartOfAccount{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// FindRoleMapping retrieves the tenant's override mapping for a role.
func (r *PgxAccountRepository) FindRoleMapping(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.AccountRoleMapping, error) {
	query := `
		SELECT mapping_id, tenant_id, role, account_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM account_role_mappings
		WHERE tenant_id = $1 AND role = $2;
	`
	var m models.AccountRoleMapping
	err := r.Pool.QueryRow(ctx, query, tenantID, string(role)).Scan(
		&m.MappingID,
		&m.TenantID,
		&m.Role,
		&m.AccountID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find role mapping for "+string(role), err)
	}

	mappingDomain := mapping.ToDomainRoleMapping(m)
	return &mappingDomain, nil
}

// UpsertRoleMapping creates or replaces the tenant's mapping for a role.
func (r *PgxAccountRepository) UpsertRoleMapping(ctx context.Context, roleMapping domain.AccountRoleMapping) error {
	query := `
		INSERT INTO account_role_mappings (
			mapping_id, tenant_id, role, account_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tenant_id, role) DO UPDATE
		SET account_id = EXCLUDED.account_id,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	m := mapping.ToModelRoleMapping(roleMapping)
	_, err := r.Pool.Exec(ctx, query,
		m.MappingID,
		m.TenantID,
		m.Role,
		m.AccountID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert role mapping for "+m.Role, err)
	}
	return nil
}
