package api

import (
	"database/sql"
	"net/http"

	"xrate/internal/service"
)

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Status  string `json:"status" example:"ready"`
	History bool   `json:"history" example:"true"`
}

// HandleHealthz godoc
// @Summary Health check (liveness)
// @Description Always returns 200 OK if the service is running. Used for liveness probes.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}

// HandleReadyz godoc
// @Summary Readiness check
// @Description Pings Postgres when lookup history is enabled. The rate provider is not probed, since every probe would spend API quota.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Ready"
// @Failure 503 {object} ErrorResponse "History database unavailable"
// @Router /readyz [get]
func HandleReadyz(svc service.RateServiceInterface, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "DB not ready"})
				return
			}
		}

		writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready", History: svc.HistoryEnabled()})
	}
}
