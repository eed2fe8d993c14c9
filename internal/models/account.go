package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// ChartOfAccount represents a ledger account row scoped to a tenant.
type ChartOfAccount struct {
	AccountID   string      `db:"account_id"`
	TenantID    string      `db:"tenant_id"`
	Code        string      `db:"code"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	Description string      `db:"description"`
	IsActive    bool        `db:"is_active"`
	AuditFields
}

// AccountRoleMapping binds a semantic account role to a tenant's account.
type AccountRoleMapping struct {
	MappingID string `db:"mapping_id"`
	TenantID  string `db:"tenant_id"`
	Role      string `db:"role"`
	AccountID string `db:"account_id"`
	AuditFields
}
