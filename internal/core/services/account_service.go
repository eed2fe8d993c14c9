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
	"github.com/ledgerforge/glposting/internal/dto"
	"github.com/ledgerforge/glposting/internal/middleware"
)

// accountService manages a tenant's chart of accounts and role mappings.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount implements portssvc.AccountSvcFacade.
func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, actorID string) (*domain.ChartOfAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if tenantID == "" {
		return nil, fmt.Errorf("%w: no active tenant context", apperrors.ErrConfiguration)
	}

	existing, err := s.accountRepo.FindAccountByCode(ctx, tenantID, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check account code %s: %w", req.Code, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s already in use", apperrors.ErrDuplicate, req.Code)
	}

	now := time.Now().UTC()
	account := domain.ChartOfAccount{
		AccountID:   uuid.NewString(),
		TenantID:    tenantID,
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account %s: %w", req.Code, err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID implements portssvc.AccountSvcFacade.
func (s *accountService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.ChartOfAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts implements portssvc.AccountSvcFacade.
func (s *accountService) ListAccounts(ctx context.Context, tenantID string) ([]domain.ChartOfAccount, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: no active tenant context", apperrors.ErrConfiguration)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// SetRoleMapping implements portssvc.AccountSvcFacade. The target account must exist in
// the tenant's chart before a role may point at it.
func (s *accountService) SetRoleMapping(ctx context.Context, tenantID string, req dto.SetRoleMappingRequest, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if tenantID == "" {
		return fmt.Errorf("%w: no active tenant context", apperrors.ErrConfiguration)
	}
	if _, ok := domain.DefaultRoleAccountCode(req.Role); !ok {
		return fmt.Errorf("%w: unknown account role %q", apperrors.ErrValidation, req.Role)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, req.AccountID)
	if err != nil {
		return fmt.Errorf("failed to load account for role mapping: %w", err)
	}
	if !account.IsActive {
		return fmt.Errorf("%w: cannot map role %s to inactive account %s", apperrors.ErrValidation, req.Role, account.Code)
	}

	now := time.Now().UTC()
	mapping := domain.AccountRoleMapping{
		MappingID: uuid.NewString(),
		TenantID:  tenantID,
		Role:      req.Role,
		AccountID: req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.accountRepo.UpsertRoleMapping(ctx, mapping); err != nil {
		return fmt.Errorf("failed to save role mapping %s: %w", req.Role, err)
	}

	logger.Info("Role mapping updated", slog.String("role", string(req.Role)), slog.String("account_id", req.AccountID))
	return nil
}
