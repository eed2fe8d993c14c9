package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerforge/glposting/internal/core/domain"
	portsrepo "github.com/ledgerforge/glposting/internal/core/ports/repositories"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/dto"
	"github.com/ledgerforge/glposting/internal/middleware"
)

// tenantService provisions tenants and seeds their default chart of accounts.
type tenantService struct {
	tenantRepo  portsrepo.TenantRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewTenantService creates a new tenant service.
func NewTenantService(tenantRepo portsrepo.TenantRepository, accountRepo portsrepo.AccountRepositoryFacade) portssvc.TenantSvcFacade {
	return &tenantService{
		tenantRepo:  tenantRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// CreateTenant implements portssvc.TenantSvcFacade. Every new tenant gets the default
// chart so each semantic role resolves immediately.
func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, actorID string) (*domain.Tenant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	tenant := domain.Tenant{
		TenantID: uuid.NewString(),
		Name:     req.Name,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}

	accounts := make([]domain.ChartOfAccount, len(domain.DefaultChart))
	for i, entry := range domain.DefaultChart {
		accounts[i] = domain.ChartOfAccount{
			AccountID:   uuid.NewString(),
			TenantID:    tenant.TenantID,
			Code:        entry.Code,
			Name:        entry.Name,
			AccountType: entry.AccountType,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
	}
	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("failed to seed default chart for tenant %s: %w", tenant.TenantID, err)
	}

	logger.Info("Tenant created with default chart",
		slog.String("tenant_id", tenant.TenantID),
		slog.Int("seeded_accounts", len(accounts)))
	return &tenant, nil
}

// GetTenantByID implements portssvc.TenantSvcFacade.
func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	return tenant, nil
}
