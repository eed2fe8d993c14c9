package mapping

import (
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/ledgerforge/glposting/internal/models"
)

// ToModelAccount converts a domain ChartOfAccount to a model ChartOfAccount
func ToModelAccount(d domain.ChartOfAccount) models.ChartOfAccount {
	return models.ChartOfAccount{
		AccountID:   d.AccountID,
		TenantID:    d.TenantID,
		Code:        d.Code,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model ChartOfAccount to a domain ChartOfAccount
func ToDomainAccount(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		AccountID:   m.AccountID,
		TenantID:    m.TenantID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRoleMapping converts a domain AccountRoleMapping to a model AccountRoleMapping
func ToModelRoleMapping(d domain.AccountRoleMapping) models.AccountRoleMapping {
	return models.AccountRoleMapping{
		MappingID:   d.MappingID,
		TenantID:    d.TenantID,
		Role:        string(d.Role),
		AccountID:   d.AccountID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoleMapping converts a model AccountRoleMapping to a domain AccountRoleMapping
func ToDomainRoleMapping(m models.AccountRoleMapping) domain.AccountRoleMapping {
	return domain.AccountRoleMapping{
		MappingID:   m.MappingID,
		TenantID:    m.TenantID,
		Role:        domain.AccountRole(m.Role),
		AccountID:   m.AccountID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
