package domain

// AccountType defines the fundamental accounting type of a ledger account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AccountRole is a semantic role that posting rules reference instead of concrete accounts.
// The resolver maps a role to the active tenant's chart of accounts.
type AccountRole string

const (
	RoleAccountsReceivable AccountRole = "ACCOUNTS_RECEIVABLE"
	RoleSalesRevenue       AccountRole = "SALES_REVENUE"
	RoleOutputTax          AccountRole = "OUTPUT_TAX"
	RoleAccountsPayable    AccountRole = "ACCOUNTS_PAYABLE"
	RoleInputTax           AccountRole = "INPUT_TAX"
	RoleInventory          AccountRole = "INVENTORY"
	RoleCostOfGoodsSold    AccountRole = "COST_OF_GOODS_SOLD"
	RoleCashDefault        AccountRole = "CASH_DEFAULT"
)

// ChartOfAccount represents one ledger account in a tenant's chart of accounts.
type ChartOfAccount struct {
	AccountID   string      `json:"accountID"`
	TenantID    string      `json:"tenantID"`
	Code        string      `json:"code"` // sortable account code, unique per tenant
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// AccountRoleMapping is a tenant's override binding a semantic role to one of its accounts.
type AccountRoleMapping struct {
	MappingID string      `json:"mappingID"`
	TenantID  string      `json:"tenantID"`
	Role      AccountRole `json:"role"`
	AccountID string      `json:"accountID"`
	AuditFields
}

// DefaultChartEntry seeds a fresh tenant with an account covering one semantic role.
type DefaultChartEntry struct {
	Code        string
	Name        string
	AccountType AccountType
	Role        AccountRole
}

// DefaultChart is the minimal chart seeded for every new tenant. Each semantic role has
// exactly one default account so a fresh tenant can post immediately; tenants may remap
// roles to their own accounts afterwards.
var DefaultChart = []DefaultChartEntry{
	{Code: "1000", Name: "Cash and Bank", AccountType: Asset, Role: RoleCashDefault},
	{Code: "1200", Name: "Accounts Receivable", AccountType: Asset, Role: RoleAccountsReceivable},
	{Code: "1300", Name: "Inventory", AccountType: Asset, Role: RoleInventory},
	{Code: "1400", Name: "Input Tax Receivable", AccountType: Asset, Role: RoleInputTax},
	{Code: "2100", Name: "Accounts Payable", AccountType: Liability, Role: RoleAccountsPayable},
	{Code: "2200", Name: "Output Tax Payable", AccountType: Liability, Role: RoleOutputTax},
	{Code: "4000", Name: "Sales Revenue", AccountType: Income, Role: RoleSalesRevenue},
	{Code: "5000", Name: "Cost of Goods Sold", AccountType: Expense, Role: RoleCostOfGoodsSold},
}

// DefaultRoleAccountCode returns the system-wide fallback account code for a role. The
// resolver uses it when the tenant has no explicit mapping for the role.
func DefaultRoleAccountCode(role AccountRole) (string, bool) {
	for _, e := range DefaultChart {
		if e.Role == role {
			return e.Code, true
		}
	}
	return "", false
}
