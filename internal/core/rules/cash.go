package rules

import (
	"fmt"
	"time"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashSaleRule posts a cash sale: debit cash/bank for the total, credit revenue for the
// subtotal, credit output tax when present.
type CashSaleRule struct {
	Sale domain.CashSale
}

var _ PostingRule = CashSaleRule{}

func (r CashSaleRule) JournalLines() ([]DraftLine, error) {
	s := r.Sale
	if s.Total.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: sale total must be positive, got %s", apperrors.ErrValidation, s.Total)
	}
	if s.TaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: sale tax amount must not be negative, got %s", apperrors.ErrValidation, s.TaxAmount)
	}

	lines := []DraftLine{
		{Role: domain.RoleCashDefault, LineType: domain.Debit, Amount: s.Total, Notes: "Cash sale " + s.SaleID},
		{Role: domain.RoleSalesRevenue, LineType: domain.Credit, Amount: s.Subtotal, Notes: "Cash sale " + s.SaleID},
	}
	if s.TaxAmount.IsPositive() {
		lines = append(lines, DraftLine{Role: domain.RoleOutputTax, LineType: domain.Credit, Amount: s.TaxAmount, Notes: "Tax on cash sale " + s.SaleID})
	}
	return lines, nil
}

func (r CashSaleRule) Description() string { return "Cash sale " + r.Sale.SaleID }

func (r CashSaleRule) Reference() domain.Reference { return r.Sale.DocReference() }

func (r CashSaleRule) Date() time.Time { return r.Sale.TransactionDate() }

// CashExpenseRule posts an expense paid in cash: debit the named expense account for the
// subtotal, debit input tax when present, credit cash/bank for the total. The expense
// account is addressed directly since expense categories are tenant-specific.
type CashExpenseRule struct {
	Expense domain.CashExpense
}

var _ PostingRule = CashExpenseRule{}

func (r CashExpenseRule) JournalLines() ([]DraftLine, error) {
	e := r.Expense
	if e.Total.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense total must be positive, got %s", apperrors.ErrValidation, e.Total)
	}
	if e.TaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: expense tax amount must not be negative, got %s", apperrors.ErrValidation, e.TaxAmount)
	}
	if e.ExpenseAccountID == "" {
		return nil, fmt.Errorf("%w: expense account is required", apperrors.ErrValidation)
	}

	lines := []DraftLine{
		{AccountID: e.ExpenseAccountID, LineType: domain.Debit, Amount: e.Subtotal, Notes: e.Description},
	}
	if e.TaxAmount.IsPositive() {
		lines = append(lines, DraftLine{Role: domain.RoleInputTax, LineType: domain.Debit, Amount: e.TaxAmount, Notes: "Tax on " + e.Description})
	}
	lines = append(lines, DraftLine{Role: domain.RoleCashDefault, LineType: domain.Credit, Amount: e.Total, Notes: e.Description})
	return lines, nil
}

func (r CashExpenseRule) Description() string {
	if r.Expense.Description != "" {
		return "Cash expense: " + r.Expense.Description
	}
	return "Cash expense " + r.Expense.ExpenseID
}

func (r CashExpenseRule) Reference() domain.Reference { return r.Expense.DocReference() }

func (r CashExpenseRule) Date() time.Time { return r.Expense.TransactionDate() }
