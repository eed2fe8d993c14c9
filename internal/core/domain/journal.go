package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
// Valid transitions are DRAFT -> POSTED -> VOID; there is no un-post.
type EntryStatus string

const (
	EntryDraft  EntryStatus = "DRAFT"
	EntryPosted EntryStatus = "POSTED"
	EntryVoid   EntryStatus = "VOID"
)

// LineType indicates whether a journal line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// Opposite returns the flipped line type, used when building reversing entries.
func (t LineType) Opposite() LineType {
	if t == Debit {
		return Credit
	}
	return Debit
}

// Reference identifies the source transaction a journal entry was posted for,
// e.g. {Type: "sales_invoice", ID: "42"}.
type Reference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (r Reference) String() string {
	if r.Type == "" && r.ID == "" {
		return ""
	}
	return r.Type + "#" + r.ID
}

// JournalEntry is the header record of one balanced posting event. Entries are
// append-only: voiding marks the original and appends a reversing entry, it never
// mutates historical lines.
type JournalEntry struct {
	EntryID          string      `json:"entryID"`
	TenantID         string      `json:"tenantID"`
	EntryNumber      string      `json:"entryNumber"` // e.g. JE-00001, unique per tenant
	EntryDate        time.Time   `json:"entryDate"`
	Description      string      `json:"description"`
	Reference        Reference   `json:"reference"`
	Status           EntryStatus `json:"status"`
	PostedAt         *time.Time  `json:"postedAt"`
	OriginalEntryID  *string     `json:"originalEntryID"`  // set on reversing entries
	ReversingEntryID *string     `json:"reversingEntryID"` // set on voided originals
	Lines            []JournalLine
	AuditFields
}

// JournalLine is a single debit or credit within a journal entry, affecting one account.
// Amount is always positive; zero-amount lines are never created.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	LineType  LineType        `json:"lineType"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes"`
	LineNo    int             `json:"lineNo"` // insertion sequence, stable tie-break for statements
	AuditFields
}
