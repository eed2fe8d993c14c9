package repositories

import (
	"context"
	"time"

	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-side aggregation queries over journal data.
// Balances follow the asset/expense-normal sign convention: debit contributes +amount,
// credit contributes -amount.
type ReportingRepository interface {
	// AccountBalanceAsOf sums an account's lines up to and including asOf.
	AccountBalanceAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error)

	// AccountBalanceBefore sums an account's lines strictly before the given date,
	// used as the opening balance of a statement.
	AccountBalanceBefore(ctx context.Context, tenantID, accountID string, before time.Time) (decimal.Decimal, error)

	// TrialBalanceRows returns each account's net balance as of a date, split into a
	// debit or credit column by sign.
	TrialBalanceRows(ctx context.Context, tenantID string, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// StatementLines returns an account's movements within [from, to], ordered by entry
	// date with line insertion sequence as the stable tie-break. Running balances are
	// filled in by the service.
	StatementLines(ctx context.Context, tenantID, accountID string, from, to time.Time) ([]domain.StatementLine, error)
}
