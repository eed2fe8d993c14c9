// Package rules converts business transactions into proposed journal lines. Each
// transaction kind has exactly one rule; rules are pure and never touch persistence.
package rules

import (
	"time"

	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DraftLine is a proposed journal line before account resolution. Either Role or
// AccountID is set: role-keyed lines are resolved against the tenant's chart of accounts
// by the posting service, account-keyed lines are used as-is.
type DraftLine struct {
	Role      domain.AccountRole
	AccountID string
	LineType  domain.LineType
	Amount    decimal.Decimal
	Notes     string
}

// PostingRule turns one source transaction into a balanced set of draft lines plus a
// description and reference for the journal entry header. A rule instance is bound to
// its transaction at construction time; the posting service depends only on this
// interface.
type PostingRule interface {
	// JournalLines returns the proposed lines. Amounts are already-resolved currency
	// values; the rule performs no rounding and omits zero-amount lines entirely.
	JournalLines() ([]DraftLine, error)
	Description() string
	Reference() domain.Reference
	Date() time.Time
}
