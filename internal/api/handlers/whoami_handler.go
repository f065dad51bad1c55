// internal/api/handlers/whoami_handler.go
package handlers

import (
	"net/http"
)

// WhoAmI returns the identity snapshot for this replica. Handy for testing
// load balancing: each request shows which pod served it and that pod's own
// visit count.
//
// @Summary Identity snapshot
// @Description Returns pod name, node name, hostname, per-replica visit count and readiness state.
// @Tags info
// @Produce json
// @Success 200 {object} models.Snapshot
// @Failure 500 {object} handlers.ErrorResponse
// @Router /whoami [get]
func (h *Handlers) WhoAmI(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Identity.Snapshot()
	if err != nil {
		h.Log.WithError(err).Error("whoami: building identity snapshot")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}
