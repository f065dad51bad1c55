// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"

	"podscope/internal/api"
	"podscope/internal/api/handlers"
	"podscope/internal/clock"
	"podscope/internal/logging"
	"podscope/internal/observability"
	"podscope/internal/services"
	"podscope/internal/web"
)

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	log := logging.NewLogger(cfg.Logging.Level)

	// Configuration problems were recovered with defaults; surface them now
	// that the logger exists.
	for _, warning := range cfg.Warnings {
		log.Warn(warning)
	}

	// Service Initialization
	counter := services.NewVisitCounter()
	gate := services.NewReadinessService(StartTime, cfg.ReadyAfterSec, clock.NewSystem())
	identity := services.NewIdentityService(cfg, counter, gate)

	renderer, err := web.NewRenderer(templatesFS)
	if err != nil {
		return fmt.Errorf("failed to load dashboard templates: %w", err)
	}

	metrics := observability.NewMetrics(
		func() float64 { return float64(counter.Value()) },
		func() float64 {
			if gate.IsReady() {
				return 1
			}
			return 0
		},
	)

	h := handlers.NewHandlers(counter, gate, identity, renderer, log)
	r := api.SetupRouter(h, metrics)

	// CORS around the whole router; credentials stay disabled because the
	// default origin list is the wildcard.
	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins(cfg.AllowedOrigins),
		ghandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		ghandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	handler := ghandlers.LoggingHandler(log.Writer(), cors(r))

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		hostname, _ := os.Hostname()
		log.WithFields(logrus.Fields{
			"addr":            serverAddr,
			"version":         Version,
			"hostname":        hostname,
			"ready_after_sec": cfg.ReadyAfterSec,
		}).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server exiting")
	return nil
}
