package models

// Tenant represents one company ledger scope.
type Tenant struct {
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
	AuditFields
}
