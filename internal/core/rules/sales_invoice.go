package rules

import (
	"fmt"
	"time"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalesInvoiceRule posts a sales invoice: debit receivables for the total, credit
// revenue for the subtotal, credit output tax for the tax amount when present.
type SalesInvoiceRule struct {
	Invoice domain.SalesInvoice
}

var _ PostingRule = SalesInvoiceRule{}

func (r SalesInvoiceRule) JournalLines() ([]DraftLine, error) {
	inv := r.Invoice
	if inv.Total.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: invoice total must be positive, got %s", apperrors.ErrValidation, inv.Total)
	}
	if inv.TaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: invoice tax amount must not be negative, got %s", apperrors.ErrValidation, inv.TaxAmount)
	}

	lines := []DraftLine{
		{Role: domain.RoleAccountsReceivable, LineType: domain.Debit, Amount: inv.Total, Notes: "Invoice " + inv.InvoiceNumber},
		{Role: domain.RoleSalesRevenue, LineType: domain.Credit, Amount: inv.Subtotal, Notes: "Sales " + inv.InvoiceNumber},
	}
	if inv.TaxAmount.IsPositive() {
		lines = append(lines, DraftLine{Role: domain.RoleOutputTax, LineType: domain.Credit, Amount: inv.TaxAmount, Notes: "Tax on " + inv.InvoiceNumber})
	}
	return lines, nil
}

func (r SalesInvoiceRule) Description() string {
	if r.Invoice.CustomerName != "" {
		return fmt.Sprintf("Sales invoice %s - %s", r.Invoice.InvoiceNumber, r.Invoice.CustomerName)
	}
	return "Sales invoice " + r.Invoice.InvoiceNumber
}

func (r SalesInvoiceRule) Reference() domain.Reference { return r.Invoice.DocReference() }

func (r SalesInvoiceRule) Date() time.Time { return r.Invoice.TransactionDate() }
