package observability

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthChecker backs the /healthz and /readyz probes. Liveness holds as long
// as the process serves HTTP; readiness flips on once Postgres, NATS and the
// stream loop are up, and off again during shutdown.
type HealthChecker struct {
	ready atomic.Bool
	start time.Time
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{start: time.Now()}
}

// SetReady marks the service as (un)willing to accept traffic.
func (h *HealthChecker) SetReady(ready bool) {
	h.ready.Store(ready)
}

// LivenessHandler always answers 200.
func (h *HealthChecker) LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, "alive")
}

// ReadinessHandler answers 200 after SetReady(true), 503 otherwise.
func (h *HealthChecker) ReadinessHandler(w http.ResponseWriter, _ *http.Request) {
	if h.ready.Load() {
		h.respond(w, http.StatusOK, "ready")
		return
	}
	h.respond(w, http.StatusServiceUnavailable, "not_ready")
}

func (h *HealthChecker) respond(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"status": status,
		"uptime": time.Since(h.start).String(),
	})
}
