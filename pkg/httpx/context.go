package httpx

import (
	"context"

	"github.com/campuskit/rollcall/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyRole   ctxKey = "role"
	CtxKeyClaims ctxKey = "claims"
)

// ClaimsFromContext returns the decoded token claims attached by the
// authentication middleware, if any.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// UserIDFromContext returns the authenticated user's id, or 0 when the
// request has not passed the authentication middleware.
func UserIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(CtxKeyUserID).(int64); ok {
		return id
	}
	return 0
}

func roleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(CtxKeyRole).(string)
	return role, ok
}
