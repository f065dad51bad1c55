// filepath: internal/api/handlers/main.go
package handlers

import (
	"os"

	"github.com/sirupsen/logrus"

	"podscope/internal/services"
	"podscope/internal/web"
)

// Handlers holds the shared dependencies for the API handlers.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Counter  services.CounterService
	Gate     services.ReadinessService
	Identity services.IdentityService

	Renderer *web.Renderer
	Log      *logrus.Logger

	// args is captured at construction so the dashboard can display the
	// process invocation; overridable in tests.
	args []string
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	counter services.CounterService,
	gate services.ReadinessService,
	identity services.IdentityService,
	renderer *web.Renderer,
	log *logrus.Logger,
) *Handlers {
	return &Handlers{
		Counter:  counter,
		Gate:     gate,
		Identity: identity,
		Renderer: renderer,
		Log:      log,
		args:     os.Args,
	}
}
