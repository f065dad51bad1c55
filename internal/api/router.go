// filepath: internal/api/router.go
package api

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"podscope/internal/api/handlers"
	"podscope/internal/observability"
)

// SetupRouter configures the main router. CORS and access logging are
// applied around the returned router by the server setup, so the router
// itself only knows about routes and metrics.
func SetupRouter(h *handlers.Handlers, m *observability.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(m.Middleware)

	// Probes
	r.HandleFunc("/live", h.Liveness).Methods("GET")
	r.HandleFunc("/ready", h.Readiness).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// Info
	r.HandleFunc("/whoami", h.WhoAmI).Methods("GET")
	r.Handle("/metrics", m.Handler()).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Dashboard
	r.HandleFunc("/", h.Home).Methods("GET")

	return r
}
