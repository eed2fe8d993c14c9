package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry row.
type EntryStatus string

const (
	EntryDraft  EntryStatus = "DRAFT"
	EntryPosted EntryStatus = "POSTED"
	EntryVoid   EntryStatus = "VOID"
)

// LineType indicates whether a journal line row is a debit or a credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// JournalEntry is the header row of one balanced posting event.
// ReferenceType/ReferenceID point at the source transaction that produced it.
type JournalEntry struct {
	EntryID          string      `db:"entry_id"`
	TenantID         string      `db:"tenant_id"`
	EntryNumber      string      `db:"entry_number"`
	EntryDate        time.Time   `db:"entry_date"`
	Description      string      `db:"description"`
	ReferenceType    string      `db:"reference_type"`
	ReferenceID      string      `db:"reference_id"`
	Status           EntryStatus `db:"status"`
	PostedAt         *time.Time  `db:"posted_at"`
	OriginalEntryID  *string     `db:"original_entry_id"`
	ReversingEntryID *string     `db:"reversing_entry_id"`
	AuditFields
}

// JournalLine is a single debit or credit row within a journal entry.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	LineType  LineType        `db:"line_type"`
	Amount    decimal.Decimal `db:"amount"`
	Notes     string          `db:"notes"`
	LineNo    int             `db:"line_no"`
	AuditFields
}
