package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ledgerforge/glposting/internal/apperrors"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/middleware"
)

// resolverService maps semantic account roles to a tenant's concrete ledger accounts.
// Resolution order: tenant's explicit mapping, then the account carrying the system
// default code for the role. Missing both aborts the posting operation.
type resolverService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewResolverService creates the chart-of-accounts resolver.
func NewResolverService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.ResolverSvcFacade {
	return &resolverService{accountRepo: accountRepo}
}

var _ portssvc.ResolverSvcFacade = (*resolverService)(nil)

// Resolve implements portssvc.ResolverSvcFacade.
func (s *resolverService) Resolve(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.ChartOfAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if tenantID == "" {
		return nil, fmt.Errorf("%w: no active tenant context for account resolution", apperrors.ErrConfiguration)
	}

	mapping, err := s.accountRepo.FindRoleMapping(ctx, tenantID, role)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up role mapping for %s: %w", role, err)
	}

	if mapping != nil {
		account, err := s.accountRepo.FindAccountByID(ctx, tenantID, mapping.AccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Role mapping points at a missing account", slog.String("role", string(role)), slog.String("account_id", mapping.AccountID))
				return nil, fmt.Errorf("%w: mapping for role %s references missing account %s", apperrors.ErrUnresolvedAccount, role, mapping.AccountID)
			}
			return nil, fmt.Errorf("failed to load mapped account for role %s: %w", role, err)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: mapped account %s for role %s is inactive", apperrors.ErrUnresolvedAccount, account.Code, role)
		}
		return account, nil
	}

	code, ok := domain.DefaultRoleAccountCode(role)
	if !ok {
		return nil, fmt.Errorf("%w: no mapping and no system default for role %q", apperrors.ErrUnresolvedAccount, role)
	}

	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no account with default code %s for role %s", apperrors.ErrUnresolvedAccount, code, role)
		}
		return nil, fmt.Errorf("failed to load default account %s for role %s: %w", code, role, err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: default account %s for role %s is inactive", apperrors.ErrUnresolvedAccount, account.Code, role)
	}

	return account, nil
}
