package repositories

import (
	"context"

	"github.com/ledgerforge/glposting/internal/core/domain"
)

// EntryReader defines read operations for journal entry data.
type EntryReader interface {
	// FindEntryByID retrieves an entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntriesByTenant retrieves entries for a tenant, newest first.
	ListEntriesByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.JournalEntry, error)
}

// EntryWriter defines write operations for journal entry data. All writes are atomic:
// the header and every line commit together or not at all.
type EntryWriter interface {
	// SaveEntry persists an entry and its lines in a single database transaction.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// SaveReversal persists the reversing entry with its lines and flips the original
	// entry to VOID with a link to the reversal, all in one database transaction.
	SaveReversal(ctx context.Context, reversing domain.JournalEntry, lines []domain.JournalLine, originalEntryID string) error
}

// JournalRepositoryFacade combines all journal-entry repository interfaces.
type JournalRepositoryFacade interface {
	EntryReader
	EntryWriter
}
