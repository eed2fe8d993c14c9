package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/middleware"
	"github.com/ledgerforge/glposting/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerService is the read side over posted journal data. Balances use the
// asset/expense-normal convention (debit positive); presentation layers invert the sign
// for credit-normal account types.
type ledgerService struct {
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates the ledger query service.
func NewLedgerService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// AccountBalance implements portssvc.LedgerSvcFacade.
func (s *ledgerService) AccountBalance(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error) {
	if tenantID == "" {
		return decimal.Zero, fmt.Errorf("%w: no active tenant context", apperrors.ErrConfiguration)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to load account %s: %w", accountID, err)
	}

	balance, err := s.reportingRepo.AccountBalanceAsOf(ctx, tenantID, accountID, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

// TrialBalance implements portssvc.LedgerSvcFacade. The returned totals must be equal
// for any set of posted entries; that equality is the engine's conservation law, so an
// inequality here is reported loudly rather than smoothed over.
func (s *ledgerService) TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if tenantID == "" {
		return nil, fmt.Errorf("%w: no active tenant context", apperrors.ErrConfiguration)
	}

	rows, err := s.reportingRepo.TrialBalanceRows(ctx, tenantID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trial balance rows: %w", err)
	}

	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		logger.Error("Trial balance columns do not match",
			slog.String("total_debit", totalDebit.String()),
			slog.String("total_credit", totalCredit.String()))
	}

	logger.Info("Trial balance generated",
		slog.Time("as_of", asOf),
		slog.Int("row_count", len(rows)))

	return &domain.TrialBalance{
		AsOf:        asOf,
		Rows:        rows,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}, nil
}

// StatementOfAccount implements portssvc.LedgerSvcFacade.
func (s *ledgerService) StatementOfAccount(ctx context.Context, tenantID, accountID string, from, to time.Time) (*domain.StatementOfAccount, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: no active tenant context", apperrors.ErrConfiguration)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: statement range end precedes start", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID); err != nil {
		return nil, fmt.Errorf("failed to load account %s: %w", accountID, err)
	}

	opening, err := s.reportingRepo.AccountBalanceBefore(ctx, tenantID, accountID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to compute opening balance: %w", err)
	}

	lines, err := s.reportingRepo.StatementLines(ctx, tenantID, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve statement lines: %w", err)
	}

	running := opening
	for i := range lines {
		running = running.Add(accounting.SignedAmount(lines[i].LineType, lines[i].Amount))
		lines[i].Running = running
	}

	return &domain.StatementOfAccount{
		AccountID:      accountID,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		ClosingBalance: running,
		Lines:          lines,
	}, nil
}
