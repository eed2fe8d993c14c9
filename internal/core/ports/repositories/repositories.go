package repositories

// RepositoryProvider bundles all repository implementations for dependency injection.
type RepositoryProvider struct {
	TenantRepo    TenantRepository
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	NumberingRepo NumberingRepository
	ReportingRepo ReportingRepository
}
