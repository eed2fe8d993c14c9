package accounting_test

import (
	"testing"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/ledgerforge/glposting/internal/core/rules"
	"github.com/ledgerforge/glposting/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(lineType domain.LineType, amount string) rules.DraftLine {
	return rules.DraftLine{LineType: lineType, Amount: dec(amount)}
}

func TestLineSums(t *testing.T) {
	lines := []rules.DraftLine{
		line(domain.Debit, "106.00"),
		line(domain.Credit, "100.00"),
		line(domain.Credit, "6.00"),
	}

	debits, credits := accounting.LineSums(lines)

	assert.True(t, debits.Equal(dec("106.00")), "debits = %s", debits)
	assert.True(t, credits.Equal(dec("106.00")), "credits = %s", credits)
}

func TestValidateBalance_Balanced(t *testing.T) {
	lines := []rules.DraftLine{
		line(domain.Debit, "250.00"),
		line(domain.Credit, "250.00"),
	}

	assert.NoError(t, accounting.ValidateBalance(lines))
}

func TestValidateBalance_SubCentDifferenceTolerated(t *testing.T) {
	lines := []rules.DraftLine{
		line(domain.Debit, "100.005"),
		line(domain.Credit, "100.00"),
	}

	assert.NoError(t, accounting.ValidateBalance(lines))
}

func TestValidateBalance_OneCentDifferenceRejected(t *testing.T) {
	lines := []rules.DraftLine{
		line(domain.Debit, "100.01"),
		line(domain.Credit, "100.00"),
	}

	err := accounting.ValidateBalance(lines)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnbalancedEntry)
}

func TestValidateBalance_TooFewLines(t *testing.T) {
	lines := []rules.DraftLine{
		line(domain.Debit, "100.00"),
	}

	err := accounting.ValidateBalance(lines)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSignedAmount(t *testing.T) {
	assert.True(t, accounting.SignedAmount(domain.Debit, dec("42.50")).Equal(dec("42.50")))
	assert.True(t, accounting.SignedAmount(domain.Credit, dec("42.50")).Equal(dec("-42.50")))
}
