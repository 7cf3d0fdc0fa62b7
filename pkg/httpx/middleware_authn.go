package httpx

import (
	"context"
	"net/http"

	"github.com/campuskit/rollcall/pkg/jwtx"
	"github.com/campuskit/rollcall/pkg/slogx"
)

// Client-facing failure messages. Verification failures all collapse to the
// same body so the response never reveals why a token was rejected.
const (
	MsgTokenRequired = "Token required"
	MsgTokenInvalid  = "Token invalid"
)

// AuthnMiddleware verifies the token carried in the Authorization header.
// The header value is the raw token, no scheme prefix. On success the
// decoded claims are attached to the request context for downstream
// middleware and handlers; on failure the request is short-circuited with
// 401 before any role check runs.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := r.Header.Get("Authorization")
			if raw == "" {
				WriteMessage(w, http.StatusUnauthorized, MsgTokenRequired)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				WriteMessage(w, http.StatusUnauthorized, MsgTokenInvalid)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.UserID)
	ctx = context.WithValue(ctx, CtxKeyRole, c.RoleName)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
