package rules_test

import (
	"testing"
	"time"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/ledgerforge/glposting/internal/core/rules"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sumByType totals the draft lines per side so tests can assert balance.
func sumByType(lines []rules.DraftLine) (debits, credits decimal.Decimal) {
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

func TestSalesInvoiceRule_Lines(t *testing.T) {
	rule := rules.SalesInvoiceRule{Invoice: domain.SalesInvoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-0042",
		InvoiceDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Acme Pte Ltd",
		Subtotal:      dec("100"),
		TaxAmount:     dec("6"),
		Total:         dec("106"),
	}}

	lines, err := rule.JournalLines()
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, domain.RoleAccountsReceivable, lines[0].Role)
	assert.Equal(t, domain.Debit, lines[0].LineType)
	assert.True(t, lines[0].Amount.Equal(dec("106")))

	assert.Equal(t, domain.RoleSalesRevenue, lines[1].Role)
	assert.Equal(t, domain.Credit, lines[1].LineType)
	assert.True(t, lines[1].Amount.Equal(dec("100")))

	assert.Equal(t, domain.RoleOutputTax, lines[2].Role)
	assert.Equal(t, domain.Credit, lines[2].LineType)
	assert.True(t, lines[2].Amount.Equal(dec("6")))

	debits, credits := sumByType(lines)
	assert.True(t, debits.Equal(credits))

	assert.Equal(t, domain.Reference{Type: "sales_invoice", ID: "inv-1"}, rule.Reference())
	assert.Contains(t, rule.Description(), "INV-0042")
	assert.Contains(t, rule.Description(), "Acme")
}

func TestSalesInvoiceRule_ZeroTaxOmitsTaxLine(t *testing.T) {
	rule := rules.SalesInvoiceRule{Invoice: domain.SalesInvoice{
		InvoiceID:     "inv-2",
		InvoiceNumber: "INV-0043",
		Subtotal:      dec("50"),
		TaxAmount:     decimal.Zero,
		Total:         dec("50"),
	}}

	lines, err := rule.JournalLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.NotEqual(t, domain.RoleOutputTax, l.Role)
		assert.False(t, l.Amount.IsZero())
	}
}

func TestSalesInvoiceRule_RejectsNonPositiveTotal(t *testing.T) {
	rule := rules.SalesInvoiceRule{Invoice: domain.SalesInvoice{
		Subtotal: decimal.Zero,
		Total:    decimal.Zero,
	}}

	_, err := rule.JournalLines()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSalesInvoiceRule_RejectsNegativeTax(t *testing.T) {
	rule := rules.SalesInvoiceRule{Invoice: domain.SalesInvoice{
		Subtotal:  dec("110"),
		TaxAmount: dec("-10"),
		Total:     dec("100"),
	}}

	_, err := rule.JournalLines()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPurchaseInvoiceRule_Lines(t *testing.T) {
	rule := rules.PurchaseInvoiceRule{Invoice: domain.PurchaseInvoice{
		InvoiceID:     "piv-1",
		InvoiceNumber: "PIV-0007",
		SupplierName:  "Supplies Co",
		Subtotal:      dec("200"),
		TaxAmount:     dec("12"),
		Total:         dec("212"),
	}}

	lines, err := rule.JournalLines()
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, domain.RoleInventory, lines[0].Role)
	assert.Equal(t, domain.Debit, lines[0].LineType)
	assert.True(t, lines[0].Amount.Equal(dec("200")))

	assert.Equal(t, domain.RoleInputTax, lines[1].Role)
	assert.Equal(t, domain.Debit, lines[1].LineType)

	assert.Equal(t, domain.RoleAccountsPayable, lines[2].Role)
	assert.Equal(t, domain.Credit, lines[2].LineType)
	assert.True(t, lines[2].Amount.Equal(dec("212")))

	debits, credits := sumByType(lines)
	assert.True(t, debits.Equal(credits))
}

func TestPaymentRule_Receipt(t *testing.T) {
	rule := rules.PaymentRule{Payment: domain.Payment{
		PaymentID: "pay-1",
		Kind:      domain.PaymentReceipt,
		Amount:    dec("106"),
		PartyName: "Acme Pte Ltd",
	}}

	lines, err := rule.JournalLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, domain.RoleCashDefault, lines[0].Role)
	assert.Equal(t, domain.Debit, lines[0].LineType)
	assert.Equal(t, domain.RoleAccountsReceivable, lines[1].Role)
	assert.Equal(t, domain.Credit, lines[1].LineType)
}

func TestPaymentRule_Disbursement(t *testing.T) {
	rule := rules.PaymentRule{Payment: domain.Payment{
		PaymentID: "pay-2",
		Kind:      domain.PaymentDisbursement,
		Amount:    dec("212"),
	}}

	lines, err := rule.JournalLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, domain.RoleAccountsPayable, lines[0].Role)
	assert.Equal(t, domain.Debit, lines[0].LineType)
	assert.Equal(t, domain.RoleCashDefault, lines[1].Role)
	assert.Equal(t, domain.Credit, lines[1].LineType)
}

func TestPaymentRule_BankAccountOverride(t *testing.T) {
	rule := rules.PaymentRule{Payment: domain.Payment{
		PaymentID:     "pay-3",
		Kind:          domain.PaymentReceipt,
		Amount:        dec("10"),
		BankAccountID: "acct-dbs",
	}}

	lines, err := rule.JournalLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// The explicit bank account replaces the cash/bank role on the money leg.
	assert.Equal(t, "acct-dbs", lines[0].AccountID)
	assert.Empty(t, string(lines[0].Role))
}

func TestPaymentRule_UnknownKind(t *testing.T) {
	rule := rules.PaymentRule{Payment: domain.Payment{
		Kind:   domain.PaymentKind("WIRE"),
		Amount: dec("10"),
	}}

	_, err := rule.JournalLines()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCashSaleRule_Lines(t *testing.T) {
	rule := rules.CashSaleRule{Sale: domain.CashSale{
		SaleID:    "cs-1",
		Subtotal:  dec("20"),
		TaxAmount: dec("1.20"),
		Total:     dec("21.20"),
	}}

	lines, err := rule.JournalLines()
	require.NoError(t, err)
	require.Len(t, lines, 3)

	debits, credits := sumByType(lines)
	assert.True(t, debits.Equal(credits))
	assert.Equal(t, domain.RoleCashDefault, lines[0].Role)
	assert.Equal(t, domain.Debit, lines[0].LineType)
}

func TestCashExpenseRule_Lines(t *testing.T) {
	rule := rules.CashExpenseRule{Expense: domain.CashExpense{
		ExpenseID:        "ce-1",
		ExpenseAccountID: "acct-rent",
		Subtotal:         dec("500"),
		TaxAmount:        dec("30"),
		Total:            dec("530"),
	}}

	lines, err := rule.JournalLines()
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "acct-rent", lines[0].AccountID)
	assert.Equal(t, domain.Debit, lines[0].LineType)
	assert.Equal(t, domain.RoleInputTax, lines[1].Role)
	assert.Equal(t, domain.RoleCashDefault, lines[2].Role)
	assert.Equal(t, domain.Credit, lines[2].LineType)

	debits, credits := sumByType(lines)
	assert.True(t, debits.Equal(credits))
}

func TestCashExpenseRule_RequiresExpenseAccount(t *testing.T) {
	rule := rules.CashExpenseRule{Expense: domain.CashExpense{
		Subtotal: dec("500"),
		Total:    dec("500"),
	}}

	_, err := rule.JournalLines()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
