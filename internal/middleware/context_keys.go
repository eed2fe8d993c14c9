package middleware

import "context"

// contextKey is a private key type to prevent collisions in context values.
type contextKey string

const (
	loggerKey = contextKey("logger")
	tenantKey = contextKey("tenantID")
	actorKey  = contextKey("actorID")
)

// GetTenantFromCtx retrieves the active tenant id from the request context. The boolean
// is false when no tenant context is available; callers must treat that as a
// configuration failure, not a default.
func GetTenantFromCtx(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantKey).(string)
	if !ok || tenantID == "" {
		return "", false
	}
	return tenantID, true
}

// GetActorFromCtx retrieves the acting principal id used for audit fields. Returns
// "system" when the caller did not identify itself.
func GetActorFromCtx(ctx context.Context) string {
	actorID, ok := ctx.Value(actorKey).(string)
	if !ok || actorID == "" {
		return "system"
	}
	return actorID
}
