package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface.
//
// All aggregations include both POSTED and VOID entries: the ledger is append-only,
// so a voided original and its reversing entry stay visible and net to zero.
type reportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new reporting repository
func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// balanceQuery sums an account's lines with debit = +amount, credit = -amount.
// The comparison operator against the cut-off date is interpolated by the caller.
const balanceQueryFmt = `
	SELECT COALESCE(SUM(CASE WHEN l.line_type = 'DEBIT' THEN l.amount ELSE -l.amount END), 0)
	FROM journal_lines l
	JOIN journal_entries j ON l.entry_id = j.entry_id
	WHERE j.tenant_id = $1
		AND l.account_id = $2
		AND j.entry_date %s $3
		AND j.status IN ('POSTED', 'VOID');
`

func (r *reportingRepository) accountBalance(ctx context.Context, tenantID, accountID string, cutoff time.Time, op string) (decimal.Decimal, error) {
	query := fmt.Sprintf(balanceQueryFmt, op)

	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, tenantID, accountID, cutoff).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("error querying balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

// AccountBalanceAsOf sums an account's lines up to and including asOf.
func (r *reportingRepository) AccountBalanceAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error) {
	return r.accountBalance(ctx, tenantID, accountID, asOf, "<=")
}

// AccountBalanceBefore sums an account's lines strictly before the given date.
func (r *reportingRepository) AccountBalanceBefore(ctx context.Context, tenantID, accountID string, before time.Time) (decimal.Decimal, error) {
	return r.accountBalance(ctx, tenantID, accountID, before, "<")
}

// TrialBalanceRows returns each account's net balance as of a date, split into a debit
// or credit column by the sign of the net.
func (r *reportingRepository) TrialBalanceRows(ctx context.Context, tenantID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(CASE WHEN l.line_type = 'DEBIT' THEN l.amount ELSE -l.amount END), 0) AS net
		FROM accounts a
		JOIN journal_lines l ON l.account_id = a.account_id
		JOIN journal_entries j ON l.entry_id = j.entry_id
		WHERE a.tenant_id = $1
			AND j.entry_date <= $2
			AND j.status IN ('POSTED', 'VOID')
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query, tenantID, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		var net decimal.Decimal

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&accountType,
			&net,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		if net.IsNegative() {
			row.Debit = decimal.Zero
			row.Credit = net.Neg()
		} else {
			row.Debit = net
			row.Credit = decimal.Zero
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}

// StatementLines returns an account's movements within [from, to]. Ordering is by entry
// date with the entry's creation time and the line number as stable tie-breaks, so two
// entries on the same date always replay in the order they were posted.
func (r *reportingRepository) StatementLines(ctx context.Context, tenantID, accountID string, from, to time.Time) ([]domain.StatementLine, error) {
	query := `
		SELECT
			j.entry_id,
			j.entry_number,
			j.entry_date,
			j.description,
			l.line_type,
			l.amount
		FROM journal_lines l
		JOIN journal_entries j ON l.entry_id = j.entry_id
		WHERE j.tenant_id = $1
			AND l.account_id = $2
			AND j.entry_date >= $3
			AND j.entry_date <= $4
			AND j.status IN ('POSTED', 'VOID')
		ORDER BY j.entry_date, j.created_at, l.line_no;
	`

	rows, err := r.Pool.Query(ctx, query, tenantID, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying statement lines for account %s: %w", accountID, err)
	}
	defer rows.Close()

	result := []domain.StatementLine{}
	for rows.Next() {
		var line domain.StatementLine
		var lineType string

		if err := rows.Scan(
			&line.EntryID,
			&line.EntryNumber,
			&line.EntryDate,
			&line.Description,
			&lineType,
			&line.Amount,
		); err != nil {
			return nil, fmt.Errorf("error scanning statement line: %w", err)
		}

		line.LineType = domain.LineType(lineType)
		result = append(result, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statement lines: %w", err)
	}

	return result, nil
}
