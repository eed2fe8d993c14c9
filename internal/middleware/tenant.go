package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

const (
	// TenantHeader carries the active tenant id on every scoped request.
	TenantHeader = "X-Tenant-ID"
	// ActorHeader carries the acting principal id for audit fields.
	ActorHeader = "X-Actor-ID"
)

// TenantContextMiddleware copies the tenant and actor headers into the request context.
// It does not reject requests itself; handlers that require a tenant fail with a
// configuration error when the context is absent.
func TenantContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if tenantID := c.GetHeader(TenantHeader); tenantID != "" {
			ctx = context.WithValue(ctx, tenantKey, tenantID)
			if logger := GetLoggerFromCtx(ctx); logger != nil {
				ctx = context.WithValue(ctx, loggerKey, logger.With(slog.String("tenant_id", tenantID)))
			}
		}
		if actorID := c.GetHeader(ActorHeader); actorID != "" {
			ctx = context.WithValue(ctx, actorKey, actorID)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
