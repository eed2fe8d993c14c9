package services

import (
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
)

// NewServiceContainer wires all services with their repository dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Tenant = NewTenantService(repos.TenantRepo, repos.AccountRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Resolver = NewResolverService(repos.AccountRepo)
	container.Numbering = NewNumberingService(repos.NumberingRepo)
	container.Posting = NewPostingService(repos.JournalRepo, repos.AccountRepo, container.Resolver, container.Numbering)
	container.Ledger = NewLedgerService(repos.ReportingRepo, repos.AccountRepo)

	return container
}
