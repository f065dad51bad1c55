// internal/api/handlers/home_handler.go
package handlers

import (
	"bytes"
	"net/http"

	"github.com/sirupsen/logrus"

	"podscope/internal/web"
)

// Home renders the dashboard page and counts the visit. The page shows the
// hostname, the injected environment, the process arguments, the per-replica
// visit count and the readiness state.
//
// @Summary Dashboard
// @Description Renders the identity and counter dashboard. Each request increments this replica's visit counter.
// @Tags dashboard
// @Produce html
// @Success 200 {string} string "rendered dashboard"
// @Failure 500 {object} handlers.ErrorResponse
// @Router / [get]
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	count := h.Counter.Increment()

	snapshot, err := h.Identity.Snapshot()
	if err != nil {
		h.Log.WithError(err).Error("home: building identity snapshot")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	identity := h.Identity.PodIdentity()
	data := web.DashboardData{
		ServiceName: identity.ServiceName,
		Hostname:    snapshot.Hostname,
		Env: map[string]string{
			"APP_ENV":      identity.AppEnv,
			"SERVICE_NAME": identity.ServiceName,
			"POD_NAME":     identity.Pod,
			"NODE_NAME":    identity.Node,
		},
		Args:          h.args,
		Count:         count,
		Ready:         snapshot.Ready,
		ReadyAfterSec: h.Gate.ReadyAfterSec(),
	}

	// Render into a buffer first so a template failure can still produce a
	// clean 500 instead of a half-written page.
	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, "index.html", data); err != nil {
		h.Log.WithError(err).Error("home: rendering dashboard")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Log.WithFields(logrus.Fields{"count": count, "pod": identity.Pod}).Info("home page accessed")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
