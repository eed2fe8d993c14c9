package repositories

import (
	"context"

	"github.com/ledgerforge/glposting/internal/core/domain"
)

// NumberingRepository exposes the persisted-number scans the numbering authority needs.
// Journal numbers live on journal_entries; numbers for caller-owned document types live
// in the source_documents registry.
type NumberingRepository interface {
	// HighestNumber returns the highest existing formatted number for the tenant and
	// document type under the given prefix, ordering by length then lexicographically so
	// growing digit counts compare correctly. Returns "" when no number exists yet.
	HighestNumber(ctx context.Context, tenantID string, docType domain.DocumentType, prefix string) (string, error)

	// NumberExists reports whether the formatted number is already taken within the
	// tenant + document type scope.
	NumberExists(ctx context.Context, tenantID string, docType domain.DocumentType, number string) (bool, error)

	// RecordDocumentNumber registers an issued number for a caller-owned document type.
	// Returns ErrDuplicate when the number is already registered.
	RecordDocumentNumber(ctx context.Context, doc domain.SourceDocument) error
}
