package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account in a trial balance report. Exactly one of
// Debit or Credit is non-zero, chosen by the sign of the account's net balance.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance is the full report plus its column totals. TotalDebit must equal
// TotalCredit for any set of posted entries; that equality is the conservation law the
// posting engine guarantees.
type TrialBalance struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// StatementLine is one movement on an account within a statement of account, with the
// running balance after applying it.
type StatementLine struct {
	EntryID     string          `json:"entryID"`
	EntryNumber string          `json:"entryNumber"`
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	LineType    LineType        `json:"lineType"`
	Amount      decimal.Decimal `json:"amount"`
	Running     decimal.Decimal `json:"running"`
}

// StatementOfAccount lists an account's movements over a date range in causal order.
type StatementOfAccount struct {
	AccountID      string          `json:"accountID"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Lines          []StatementLine `json:"lines"`
}
