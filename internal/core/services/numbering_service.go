package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/middleware"
)

// maxNumberAttempts bounds the compare-and-retry loop. Collisions only occur when two
// posts race on the same tenant+type snapshot, so hitting this bound in practice means
// something is badly wrong.
const maxNumberAttempts = 100

// numberingService derives the next document number by scanning persisted numbers under
// the same tenant + document type + prefix scope. No locks: candidates are re-checked
// for existence and bumped on collision.
type numberingService struct {
	numberingRepo portsrepo.NumberingRepository
}

// NewNumberingService creates the numbering authority.
func NewNumberingService(numberingRepo portsrepo.NumberingRepository) portssvc.NumberingSvcFacade {
	return &numberingService{numberingRepo: numberingRepo}
}

var _ portssvc.NumberingSvcFacade = (*numberingService)(nil)

// resolveFormat fills in the default prefix and padding width for a document type.
func resolveFormat(docType domain.DocumentType, prefix string, width int) (string, int, error) {
	if prefix == "" {
		p, ok := domain.DefaultPrefix(docType)
		if !ok {
			return "", 0, fmt.Errorf("%w: no default prefix for document type %q", apperrors.ErrConfiguration, docType)
		}
		prefix = p
	}
	if width <= 0 {
		width = domain.DefaultNumberWidth
	}
	return prefix, width, nil
}

// Generate implements portssvc.NumberingSvcFacade.
func (s *numberingService) Generate(ctx context.Context, tenantID string, docType domain.DocumentType, prefix string, width int) (string, error) {
	if tenantID == "" {
		return "", fmt.Errorf("%w: no active tenant context for number generation", apperrors.ErrConfiguration)
	}

	prefix, width, err := resolveFormat(docType, prefix, width)
	if err != nil {
		return "", err
	}

	highest, err := s.numberingRepo.HighestNumber(ctx, tenantID, docType, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to scan highest number for %s/%s: %w", tenantID, docType, err)
	}

	next := parseNumericSuffix(highest, prefix) + 1

	// Compare-and-retry: a concurrent post may have taken our candidate between the
	// highest-number snapshot and now. Bump and re-check rather than fail.
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		candidate := fmt.Sprintf("%s%0*d", prefix, width, next)
		exists, err := s.numberingRepo.NumberExists(ctx, tenantID, docType, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check number %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		next++
	}

	return "", fmt.Errorf("%w: gave up after %d attempts for %s/%s", apperrors.ErrNumberRetryExhausted, maxNumberAttempts, tenantID, docType)
}

// Issue implements portssvc.NumberingSvcFacade. It records the generated number in the
// source document registry; a duplicate insert (lost race) restarts the generation.
func (s *numberingService) Issue(ctx context.Context, tenantID string, docType domain.DocumentType, prefix string, width int, actorID string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if docType == domain.DocJournalEntry {
		return "", fmt.Errorf("%w: journal entry numbers are allocated by the posting service", apperrors.ErrValidation)
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number, err := s.Generate(ctx, tenantID, docType, prefix, width)
		if err != nil {
			return "", err
		}

		now := time.Now().UTC()
		doc := domain.SourceDocument{
			DocumentID: uuid.NewString(),
			TenantID:   tenantID,
			DocType:    docType,
			DocNumber:  number,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}

		err = s.numberingRepo.RecordDocumentNumber(ctx, doc)
		if err == nil {
			logger.Info("Document number issued", slog.String("doc_type", string(docType)), slog.String("number", number))
			return number, nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Document number collision on record, regenerating", slog.String("number", number))
			continue
		}
		return "", fmt.Errorf("failed to record document number %s: %w", number, err)
	}

	return "", fmt.Errorf("%w: gave up recording a number for %s/%s", apperrors.ErrNumberRetryExhausted, tenantID, docType)
}

// parseNumericSuffix extracts the numeric part of the highest existing number. An empty
// or unparsable suffix starts the sequence at zero.
func parseNumericSuffix(number, prefix string) int64 {
	if number == "" || !strings.HasPrefix(number, prefix) {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(number, prefix), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
