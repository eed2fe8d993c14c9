package domain

// Tenant is the unit of isolation: every account, mapping, entry and number sequence is
// scoped to exactly one tenant.
type Tenant struct {
	TenantID string `json:"tenantID"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
