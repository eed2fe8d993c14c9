package handlers

import (
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Every scoped route reads the active tenant from the X-Tenant-ID header.
	v1 := r.Group("/api/v1", middleware.TenantContextMiddleware())

	registerTenantRoutes(v1, services.Tenant)
	registerAccountRoutes(v1, services.Account)
	registerPostingRoutes(v1, services.Posting)
	registerLedgerRoutes(v1, services.Ledger)
	registerNumberingRoutes(v1, services.Numbering)
}
