package mapping

import (
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/ledgerforge/glposting/internal/models"
)

// ToModelEntry converts a domain JournalEntry to a model JournalEntry
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          d.EntryID,
		TenantID:         d.TenantID,
		EntryNumber:      d.EntryNumber,
		EntryDate:        d.EntryDate,
		Description:      d.Description,
		ReferenceType:    d.Reference.Type,
		ReferenceID:      d.Reference.ID,
		Status:           models.EntryStatus(d.Status),
		PostedAt:         d.PostedAt,
		OriginalEntryID:  d.OriginalEntryID,
		ReversingEntryID: d.ReversingEntryID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:          m.EntryID,
		TenantID:         m.TenantID,
		EntryNumber:      m.EntryNumber,
		EntryDate:        m.EntryDate,
		Description:      m.Description,
		Reference:        domain.Reference{Type: m.ReferenceType, ID: m.ReferenceID},
		Status:           domain.EntryStatus(m.Status),
		PostedAt:         m.PostedAt,
		OriginalEntryID:  m.OriginalEntryID,
		ReversingEntryID: m.ReversingEntryID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLine converts a domain JournalLine to a model JournalLine
func ToModelLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		LineType:    models.LineType(d.LineType),
		Amount:      d.Amount,
		Notes:       d.Notes,
		LineNo:      d.LineNo,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLine converts a model JournalLine to a domain JournalLine
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		LineType:    domain.LineType(m.LineType),
		Amount:      m.Amount,
		Notes:       m.Notes,
		LineNo:      m.LineNo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
