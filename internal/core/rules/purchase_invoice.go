package rules

import (
	"fmt"
	"time"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseInvoiceRule posts a supplier invoice: debit inventory for the subtotal, debit
// input tax when present, credit payables for the total.
type PurchaseInvoiceRule struct {
	Invoice domain.PurchaseInvoice
}

var _ PostingRule = PurchaseInvoiceRule{}

func (r PurchaseInvoiceRule) JournalLines() ([]DraftLine, error) {
	inv := r.Invoice
	if inv.Total.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: invoice total must be positive, got %s", apperrors.ErrValidation, inv.Total)
	}
	if inv.TaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: invoice tax amount must not be negative, got %s", apperrors.ErrValidation, inv.TaxAmount)
	}

	lines := []DraftLine{
		{Role: domain.RoleInventory, LineType: domain.Debit, Amount: inv.Subtotal, Notes: "Purchase " + inv.InvoiceNumber},
	}
	if inv.TaxAmount.IsPositive() {
		lines = append(lines, DraftLine{Role: domain.RoleInputTax, LineType: domain.Debit, Amount: inv.TaxAmount, Notes: "Tax on " + inv.InvoiceNumber})
	}
	lines = append(lines, DraftLine{Role: domain.RoleAccountsPayable, LineType: domain.Credit, Amount: inv.Total, Notes: "Invoice " + inv.InvoiceNumber})
	return lines, nil
}

func (r PurchaseInvoiceRule) Description() string {
	if r.Invoice.SupplierName != "" {
		return fmt.Sprintf("Purchase invoice %s - %s", r.Invoice.InvoiceNumber, r.Invoice.SupplierName)
	}
	return "Purchase invoice " + r.Invoice.InvoiceNumber
}

func (r PurchaseInvoiceRule) Reference() domain.Reference { return r.Invoice.DocReference() }

func (r PurchaseInvoiceRule) Date() time.Time { return r.Invoice.TransactionDate() }
