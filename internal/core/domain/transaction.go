package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Postable is the source-transaction abstraction: any business document that can be
// converted into a journal entry. The posting engine only reads the date and reference
// identity; status transitions and back-references on the source document belong to the
// calling workflow.
type Postable interface {
	TransactionDate() time.Time
	DocReference() Reference
}

// SalesInvoice carries the amounts a sales invoice posting needs. Subtotal, TaxAmount and
// Total are already-resolved currency values; the rule performs no rounding.
type SalesInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	CustomerName  string          `json:"customerName"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
}

func (i SalesInvoice) TransactionDate() time.Time { return i.InvoiceDate }
func (i SalesInvoice) DocReference() Reference {
	return Reference{Type: "sales_invoice", ID: i.InvoiceID}
}

// PurchaseInvoice carries the amounts a supplier invoice posting needs.
type PurchaseInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	SupplierName  string          `json:"supplierName"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
}

func (i PurchaseInvoice) TransactionDate() time.Time { return i.InvoiceDate }
func (i PurchaseInvoice) DocReference() Reference {
	return Reference{Type: "purchase_invoice", ID: i.InvoiceID}
}

// PaymentKind distinguishes money received from money paid out.
type PaymentKind string

const (
	PaymentReceipt      PaymentKind = "RECEIPT"      // customer payment, settles receivables
	PaymentDisbursement PaymentKind = "DISBURSEMENT" // supplier payment, settles payables
)

// Payment records money moving through the default cash/bank account (or an explicit
// bank account) against receivables or payables.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Kind          PaymentKind     `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	BankAccountID string          `json:"bankAccountID"` // optional override of the cash/bank default
	PartyName     string          `json:"partyName"`
}

func (p Payment) TransactionDate() time.Time { return p.PaymentDate }
func (p Payment) DocReference() Reference {
	return Reference{Type: "payment", ID: p.PaymentID}
}

// CashSale is a point-of-sale transaction settled immediately in cash.
type CashSale struct {
	SaleID    string          `json:"saleID"`
	SaleDate  time.Time       `json:"saleDate"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Total     decimal.Decimal `json:"total"`
}

func (s CashSale) TransactionDate() time.Time { return s.SaleDate }
func (s CashSale) DocReference() Reference {
	return Reference{Type: "cash_sale", ID: s.SaleID}
}

// CashExpense is an expense paid immediately in cash. ExpenseAccountID names the concrete
// expense account since expense categories are tenant-specific and not covered by a
// semantic role.
type CashExpense struct {
	ExpenseID        string          `json:"expenseID"`
	ExpenseDate      time.Time       `json:"expenseDate"`
	ExpenseAccountID string          `json:"expenseAccountID"`
	Description      string          `json:"description"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	Total            decimal.Decimal `json:"total"`
}

func (e CashExpense) TransactionDate() time.Time { return e.ExpenseDate }
func (e CashExpense) DocReference() Reference {
	return Reference{Type: "cash_expense", ID: e.ExpenseID}
}
