package accounting

import (
	"fmt"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/ledgerforge/glposting/internal/core/rules"
	"github.com/shopspring/decimal"
)

// BalanceEpsilon is the tolerance for the debit==credit check, one currency cent.
// Amounts are fixed-point decimals so valid postings balance exactly; the epsilon is a
// ceiling, never a rounding aid.
var BalanceEpsilon = decimal.RequireFromString("0.01")

// LineSums returns the total debits and total credits of a set of draft lines.
func LineSums(lines []rules.DraftLine) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range lines {
		if l.LineType == domain.Debit {
			debits = debits.Add(l.Amount)
		} else {
			credits = credits.Add(l.Amount)
		}
	}
	return debits, credits
}

// ValidateBalance enforces the double-entry invariant on proposed lines: at least two
// lines, and total debits equal to total credits. An unbalanced set indicates a bug in
// the rule or upstream amounts and is never auto-corrected.
func ValidateBalance(lines []rules.DraftLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: a journal entry needs at least two lines", apperrors.ErrValidation)
	}

	debits, credits := LineSums(lines)
	if diff := debits.Sub(credits).Abs(); diff.GreaterThanOrEqual(BalanceEpsilon) {
		return fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalancedEntry, debits, credits)
	}
	return nil
}

// SignedAmount converts a line to the asset/expense-normal sign convention: debits
// contribute +amount, credits contribute -amount.
func SignedAmount(lineType domain.LineType, amount decimal.Decimal) decimal.Decimal {
	if lineType == domain.Credit {
		return amount.Neg()
	}
	return amount
}
