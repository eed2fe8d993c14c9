package mapping

import (
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/ledgerforge/glposting/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:    d.TenantID,
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:    m.TenantID,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSourceDocument converts a domain SourceDocument to a model SourceDocument
func ToModelSourceDocument(d domain.SourceDocument) models.SourceDocument {
	return models.SourceDocument{
		DocumentID:  d.DocumentID,
		TenantID:    d.TenantID,
		DocType:     string(d.DocType),
		DocNumber:   d.DocNumber,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
