package rules

import (
	"fmt"
	"time"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentRule posts a payment. Receipts debit cash/bank and credit receivables;
// disbursements debit payables and credit cash/bank. An explicit bank account id on the
// payment overrides the cash/bank default role.
type PaymentRule struct {
	Payment domain.Payment
}

var _ PostingRule = PaymentRule{}

func (r PaymentRule) cashLine(lineType domain.LineType) DraftLine {
	line := DraftLine{LineType: lineType, Amount: r.Payment.Amount, Notes: "Payment " + r.Payment.PaymentID}
	if r.Payment.BankAccountID != "" {
		line.AccountID = r.Payment.BankAccountID
	} else {
		line.Role = domain.RoleCashDefault
	}
	return line
}

func (r PaymentRule) JournalLines() ([]DraftLine, error) {
	p := r.Payment
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, p.Amount)
	}

	switch p.Kind {
	case domain.PaymentReceipt:
		return []DraftLine{
			r.cashLine(domain.Debit),
			{Role: domain.RoleAccountsReceivable, LineType: domain.Credit, Amount: p.Amount, Notes: "Receipt from " + p.PartyName},
		}, nil
	case domain.PaymentDisbursement:
		return []DraftLine{
			{Role: domain.RoleAccountsPayable, LineType: domain.Debit, Amount: p.Amount, Notes: "Payment to " + p.PartyName},
			r.cashLine(domain.Credit),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown payment kind %q", apperrors.ErrValidation, p.Kind)
	}
}

func (r PaymentRule) Description() string {
	if r.Payment.Kind == domain.PaymentDisbursement {
		return "Payment to " + r.Payment.PartyName
	}
	return "Payment received from " + r.Payment.PartyName
}

func (r PaymentRule) Reference() domain.Reference { return r.Payment.DocReference() }

func (r PaymentRule) Date() time.Time { return r.Payment.TransactionDate() }
