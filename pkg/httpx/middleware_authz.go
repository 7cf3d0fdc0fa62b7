package httpx

import "net/http"

// MsgRoleForbidden is the body returned on a role mismatch.
const MsgRoleForbidden = "This is not for you"

// RequireRole gates a route on the role claim of an already-verified token.
// It must be chained after AuthnMiddleware: it reads the decoded claims
// from the request context and never re-verifies the token. The comparison
// is exact string equality; a request with no claims in context is denied.
func RequireRole(required string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := roleFromContext(r.Context())
			if !ok || role != required {
				WriteMessage(w, http.StatusForbidden, MsgRoleForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
