package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	tenantRepo := newPgxTenantRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	numberingRepo := newPgxNumberingRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TenantRepo:    tenantRepo,
		AccountRepo:   accountRepo,
		JournalRepo:   journalRepo,
		NumberingRepo: numberingRepo,
		ReportingRepo: reportingRepo,
	}
}
