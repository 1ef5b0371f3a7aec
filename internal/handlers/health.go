package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	applog "oceanbistro/internal/log"
)

type healthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// Health is a simple readiness handler suitable for infrastructure probes.
// A configured but unreachable preference database degrades the status
// without failing the probe, since the site renders without it.
func Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)
	resp := healthResponse{
		Status:   "ok",
		Database: databaseStatus(r),
		Time:     now().UTC(),
	}
	if resp.Database == "unavailable" {
		resp.Status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	applog.Debug(r.Context(), "health check responded successfully", "status", resp.Status)
}

func databaseStatus(r *http.Request) string {
	if database == nil {
		return "disabled"
	}
	sqlDB, err := database.DB()
	if err != nil {
		applog.Error(r.Context(), "failed to access database handle", "error", err)
		return "unavailable"
	}
	if err := sqlDB.PingContext(r.Context()); err != nil {
		applog.Error(r.Context(), "database ping failed", "error", err)
		return "unavailable"
	}
	return "ok"
}
