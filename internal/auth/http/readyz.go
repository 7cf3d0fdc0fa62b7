package http

import (
	"net/http"
	"time"

	"github.com/campuskit/rollcall/internal/auth/store"
	"github.com/campuskit/rollcall/pkg/httpx"
	"github.com/campuskit/rollcall/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Reports whether the service can take traffic. Pings the database.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	HealthResponse	"status, uptime, version, checks"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := slogx.FromContext(ctx)

		status := "ok"
		code := http.StatusOK
		checks := &HealthChecks{Database: "ok"}

		if err := st.Ping(ctx); err != nil {
			log.Error("readiness check failed", "check", "database", "err", err)
			checks.Database = "unreachable"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	})
}
