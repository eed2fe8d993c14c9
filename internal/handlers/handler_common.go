package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerforge/glposting/internal/middleware"
)

// requireTenant pulls the active tenant from the request context. A missing tenant is a
// caller configuration failure; the request is aborted with 500 and the handler must
// return immediately.
func requireTenant(c *gin.Context) (string, bool) {
	tenantID, ok := middleware.GetTenantFromCtx(c.Request.Context())
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("No tenant in request context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No active tenant configured; set the " + middleware.TenantHeader + " header"})
		return "", false
	}
	return tenantID, true
}
