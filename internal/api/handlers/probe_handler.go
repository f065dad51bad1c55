// internal/api/handlers/probe_handler.go
package handlers

import (
	"net/http"

	"podscope/internal/models"
)

// Liveness tells the orchestrator whether the process is alive. If this
// endpoint stops responding the container gets restarted, which is why no
// request failure elsewhere may ever take the process down.
//
// @Summary Liveness probe
// @Description Always reports the process as alive. Used by the orchestrator to decide whether to restart the container.
// @Tags health
// @Produce json
// @Success 200 {object} models.ProbeStatus
// @Router /live [get]
func (h *Handlers) Liveness(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, models.ProbeStatus{Status: "alive"})
}

// Readiness tells the orchestrator whether this replica should receive
// traffic. During the warmup period it returns 503 so no traffic is routed
// to the pod before it is initialized.
//
// @Summary Readiness probe
// @Description Reports 503 until the configured warmup period has elapsed, then 200.
// @Tags health
// @Produce json
// @Success 200 {object} models.ProbeStatus
// @Failure 503 {object} models.ProbeStatus
// @Router /ready [get]
func (h *Handlers) Readiness(w http.ResponseWriter, r *http.Request) {
	if !h.Gate.IsReady() {
		h.Log.Info("readiness probe: not ready yet")
		respondWithJSON(w, http.StatusServiceUnavailable, models.ProbeStatus{Status: "not ready"})
		return
	}
	respondWithJSON(w, http.StatusOK, models.ProbeStatus{Status: "ready"})
}

// HealthCheck is a simple public endpoint to confirm the server is running,
// useful for load balancers and manual verification.
//
// @Summary General health check
// @Description Always returns OK.
// @Tags health
// @Produce json
// @Success 200 {object} models.ProbeStatus
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, models.ProbeStatus{Status: "ok"})
}
