package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/core/rules"
	"github.com/ledgerforge/glposting/internal/middleware"
	"github.com/ledgerforge/glposting/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// postingService orchestrates Post and Reverse: rule -> resolve accounts -> validate
// balance -> allocate number -> persist atomically. Side effects on source transactions
// (status flips, back-references) belong to the calling workflow; the only externally
// observable effect here is journal creation and voiding.
type postingService struct {
	journalRepo  portsrepo.JournalRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	resolverSvc  portssvc.ResolverSvcFacade
	numberingSvc portssvc.NumberingSvcFacade
}

// NewPostingService creates a new posting service.
func NewPostingService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	resolverSvc portssvc.ResolverSvcFacade,
	numberingSvc portssvc.NumberingSvcFacade,
) portssvc.PostingSvcFacade {
	return &postingService{
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		resolverSvc:  resolverSvc,
		numberingSvc: numberingSvc,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// resolveDraftLines turns role-keyed draft lines into account-keyed ones. Resolution
// failures abort the whole posting: an entry can never be created with a missing leg.
func (s *postingService) resolveDraftLines(ctx context.Context, tenantID string, drafts []rules.DraftLine) ([]rules.DraftLine, error) {
	resolved := make([]rules.DraftLine, len(drafts))
	roleCache := make(map[domain.AccountRole]string)

	for i, draft := range drafts {
		if draft.AccountID != "" {
			resolved[i] = draft
			continue
		}
		accountID, ok := roleCache[draft.Role]
		if !ok {
			account, err := s.resolverSvc.Resolve(ctx, tenantID, draft.Role)
			if err != nil {
				return nil, err
			}
			accountID = account.AccountID
			roleCache[draft.Role] = accountID
		}
		draft.AccountID = accountID
		resolved[i] = draft
	}
	return resolved, nil
}

// validateAccounts checks every referenced account exists, is active and belongs to the
// tenant.
func (s *postingService) validateAccounts(ctx context.Context, tenantID string, drafts []rules.DraftLine) error {
	accountIDs := make([]string, 0, len(drafts))
	for _, d := range drafts {
		accountIDs = append(accountIDs, d.AccountID)
	}
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, uniqueStrings(accountIDs))
	if err != nil {
		return fmt.Errorf("failed to fetch accounts for posting: %w", err)
	}
	for _, id := range uniqueStrings(accountIDs) {
		acc, found := accountsMap[id]
		if !found {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acc.Code)
		}
	}
	return nil
}

// Post implements portssvc.PostingSvcFacade.
func (s *postingService) Post(ctx context.Context, tenantID string, rule rules.PostingRule, actorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if tenantID == "" {
		return nil, fmt.Errorf("%w: no active tenant context for posting", apperrors.ErrConfiguration)
	}

	drafts, err := rule.JournalLines()
	if err != nil {
		return nil, fmt.Errorf("posting rule rejected transaction: %w", err)
	}
	for _, d := range drafts {
		if d.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: line amount must be positive, got %s", apperrors.ErrValidation, d.Amount)
		}
		if d.LineType != domain.Debit && d.LineType != domain.Credit {
			return nil, fmt.Errorf("%w: invalid line type %q", apperrors.ErrValidation, d.LineType)
		}
	}

	if err := accounting.ValidateBalance(drafts); err != nil {
		return nil, err
	}

	drafts, err = s.resolveDraftLines(ctx, tenantID, drafts)
	if err != nil {
		return nil, err
	}
	if err := s.validateAccounts(ctx, tenantID, drafts); err != nil {
		return nil, err
	}

	entryNumber, err := s.numberingSvc.Generate(ctx, tenantID, domain.DocJournalEntry, "", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate journal number: %w", err)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	entry := domain.JournalEntry{
		EntryID:     entryID,
		TenantID:    tenantID,
		EntryNumber: entryNumber,
		EntryDate:   rule.Date(),
		Description: rule.Description(),
		Reference:   rule.Reference(),
		Status:      domain.EntryPosted,
		PostedAt:    &now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	lines := make([]domain.JournalLine, len(drafts))
	for i, d := range drafts {
		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entryID,
			AccountID: d.AccountID,
			LineType:  d.LineType,
			Amount:    d.Amount,
			Notes:     d.Notes,
			LineNo:    i + 1,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("entry_number", entryNumber))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry posted",
		slog.String("entry_id", entryID),
		slog.String("entry_number", entryNumber),
		slog.String("reference", entry.Reference.String()))

	entry.Lines = lines
	return &entry, nil
}

// validateReversible fetches the original entry and rejects anything that is not a
// plain posted entry: double reversal and reversing a reversal are both conflicts.
func (s *postingService) validateReversible(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, []domain.JournalLine, error) {
	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to retrieve entry for reversal: %w", err)
	}
	if original.TenantID != tenantID {
		// Obscure existence across tenants.
		return nil, nil, apperrors.ErrNotFound
	}
	if original.Status != domain.EntryPosted {
		return nil, nil, fmt.Errorf("%w: entry %s has status %s, expected %s", apperrors.ErrConflict, original.EntryNumber, original.Status, domain.EntryPosted)
	}
	if original.OriginalEntryID != nil {
		return nil, nil, fmt.Errorf("%w: entry %s is itself a reversal", apperrors.ErrConflict, original.EntryNumber)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve lines for reversal: %w", err)
	}
	return original, lines, nil
}

// Reverse implements portssvc.PostingSvcFacade.
func (s *postingService) Reverse(ctx context.Context, tenantID, entryID, reason, actorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if tenantID == "" {
		return nil, fmt.Errorf("%w: no active tenant context for reversal", apperrors.ErrConfiguration)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: a reversal reason is required", apperrors.ErrValidation)
	}

	original, originalLines, err := s.validateReversible(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}

	entryNumber, err := s.numberingSvc.Generate(ctx, tenantID, domain.DocJournalEntry, "", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate journal number for reversal: %w", err)
	}

	now := time.Now().UTC()
	reversingID := uuid.NewString()

	reversing := domain.JournalEntry{
		EntryID:         reversingID,
		TenantID:        tenantID,
		EntryNumber:     entryNumber,
		EntryDate:       original.EntryDate,
		Description:     fmt.Sprintf("%s: %s", reason, original.Description),
		Reference:       original.Reference,
		Status:          domain.EntryPosted,
		PostedAt:        &now,
		OriginalEntryID: &original.EntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	lines := make([]domain.JournalLine, len(originalLines))
	for i, orig := range originalLines {
		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   reversingID,
			AccountID: orig.AccountID,
			LineType:  orig.LineType.Opposite(),
			Amount:    orig.Amount,
			Notes:     orig.Notes,
			LineNo:    i + 1,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
	}

	if err := s.journalRepo.SaveReversal(ctx, reversing, lines, original.EntryID); err != nil {
		logger.Error("Failed to save reversal", slog.String("error", err.Error()), slog.String("original_entry_id", original.EntryID))
		return nil, fmt.Errorf("failed to save reversal: %w", err)
	}

	logger.Info("Journal entry reversed",
		slog.String("original_entry", original.EntryNumber),
		slog.String("reversing_entry", entryNumber))

	reversing.Lines = lines
	return &reversing, nil
}

// GetEntryByID implements portssvc.PostingSvcFacade.
func (s *postingService) GetEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry.TenantID != tenantID {
		return nil, apperrors.ErrNotFound
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries implements portssvc.PostingSvcFacade.
func (s *postingService) ListEntries(ctx context.Context, tenantID string, limit, offset int) ([]domain.JournalEntry, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: no active tenant context", apperrors.ErrConfiguration)
	}
	if limit <= 0 {
		limit = 20
	}
	entries, err := s.journalRepo.ListEntriesByTenant(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
