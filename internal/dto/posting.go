package dto

import (
	"fmt"
	"time"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/ledgerforge/glposting/internal/core/rules"
	"github.com/shopspring/decimal"
)

// PostTransactionRequest carries one source transaction to post. Kind selects which of
// the embedded transaction payloads is read; exactly that payload must be present.
type PostTransactionRequest struct {
	Kind            string                  `json:"kind" binding:"required,oneof=sales_invoice purchase_invoice payment cash_sale cash_expense"`
	SalesInvoice    *domain.SalesInvoice    `json:"salesInvoice,omitempty"`
	PurchaseInvoice *domain.PurchaseInvoice `json:"purchaseInvoice,omitempty"`
	Payment         *domain.Payment         `json:"payment,omitempty"`
	CashSale        *domain.CashSale        `json:"cashSale,omitempty"`
	CashExpense     *domain.CashExpense     `json:"cashExpense,omitempty"`
}

// Rule builds the posting rule for the selected transaction kind.
func (r PostTransactionRequest) Rule() (rules.PostingRule, error) {
	switch r.Kind {
	case "sales_invoice":
		if r.SalesInvoice == nil {
			return nil, fmt.Errorf("%w: salesInvoice payload is required for kind sales_invoice", apperrors.ErrValidation)
		}
		return rules.SalesInvoiceRule{Invoice: *r.SalesInvoice}, nil
	case "purchase_invoice":
		if r.PurchaseInvoice == nil {
			return nil, fmt.Errorf("%w: purchaseInvoice payload is required for kind purchase_invoice", apperrors.ErrValidation)
		}
		return rules.PurchaseInvoiceRule{Invoice: *r.PurchaseInvoice}, nil
	case "payment":
		if r.Payment == nil {
			return nil, fmt.Errorf("%w: payment payload is required for kind payment", apperrors.ErrValidation)
		}
		return rules.PaymentRule{Payment: *r.Payment}, nil
	case "cash_sale":
		if r.CashSale == nil {
			return nil, fmt.Errorf("%w: cashSale payload is required for kind cash_sale", apperrors.ErrValidation)
		}
		return rules.CashSaleRule{Sale: *r.CashSale}, nil
	case "cash_expense":
		if r.CashExpense == nil {
			return nil, fmt.Errorf("%w: cashExpense payload is required for kind cash_expense", apperrors.ErrValidation)
		}
		return rules.CashExpenseRule{Expense: *r.CashExpense}, nil
	default:
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, r.Kind)
	}
}

// ReverseEntryRequest carries the reason for voiding a posted entry.
type ReverseEntryRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=255"`
}

// LineResponse is the API representation of one journal line.
type LineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	LineType  domain.LineType `json:"lineType"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
	LineNo    int             `json:"lineNo"`
}

// EntryResponse is the API representation of a journal entry with its lines.
type EntryResponse struct {
	EntryID          string             `json:"entryID"`
	EntryNumber      string             `json:"entryNumber"`
	EntryDate        time.Time          `json:"entryDate"`
	Description      string             `json:"description"`
	Reference        string             `json:"reference,omitempty"`
	Status           domain.EntryStatus `json:"status"`
	PostedAt         *time.Time         `json:"postedAt,omitempty"`
	OriginalEntryID  *string            `json:"originalEntryID,omitempty"`
	ReversingEntryID *string            `json:"reversingEntryID,omitempty"`
	Lines            []LineResponse     `json:"lines,omitempty"`
}

// ToEntryResponse converts a domain journal entry to its API representation.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:          e.EntryID,
		EntryNumber:      e.EntryNumber,
		EntryDate:        e.EntryDate,
		Description:      e.Description,
		Reference:        e.Reference.String(),
		Status:           e.Status,
		PostedAt:         e.PostedAt,
		OriginalEntryID:  e.OriginalEntryID,
		ReversingEntryID: e.ReversingEntryID,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = LineResponse{
				LineID:    l.LineID,
				AccountID: l.AccountID,
				LineType:  l.LineType,
				Amount:    l.Amount,
				Notes:     l.Notes,
				LineNo:    l.LineNo,
			}
		}
	}
	return resp
}

// ToEntryResponses converts a slice of domain entries.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}
