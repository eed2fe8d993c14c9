package repositories

import (
	"context"

	"github.com/ledgerforge/glposting/internal/core/domain"
)

// TenantRepository defines operations on tenant records.
type TenantRepository interface {
	// SaveTenant inserts a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// FindTenantByID retrieves a tenant by id, ErrNotFound if absent.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}
