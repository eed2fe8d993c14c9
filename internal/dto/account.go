package dto

import (
	"time"

	"github.com/ledgerforge/glposting/internal/core/domain"
)

// CreateAccountRequest is the payload for adding an account to a tenant's chart.
type CreateAccountRequest struct {
	Code        string             `json:"code" binding:"required,min=1,max=20"`
	Name        string             `json:"name" binding:"required,min=1,max=120"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Description string             `json:"description"`
}

// SetRoleMappingRequest binds a semantic account role to one of the tenant's accounts,
// overriding the system default for that role.
type SetRoleMappingRequest struct {
	Role      domain.AccountRole `json:"role" binding:"required"`
	AccountID string             `json:"accountID" binding:"required,uuid"`
}

// AccountResponse is the API representation of a chart-of-accounts entry.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Description string             `json:"description,omitempty"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain account to its API representation.
func ToAccountResponse(a *domain.ChartOfAccount) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: a.AccountType,
		Description: a.Description,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.ChartOfAccount) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
