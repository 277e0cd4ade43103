package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/city-lens/internal/config"
	"github.com/JaimeStill/city-lens/internal/lifecycle"
	"github.com/JaimeStill/city-lens/pkg/middleware"
	"github.com/JaimeStill/city-lens/web/app"
)

// buildHandler mounts the probes and the view application and wraps them
// in the middleware stack.
func buildHandler(cfg *config.Config, logger *slog.Logger, ready lifecycle.ReadinessChecker) (http.Handler, error) {
	appHandler, err := app.NewHandler(&cfg.App, logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealthCheck)
	mux.HandleFunc("GET /readyz", handleReadyCheck(ready))

	if base := strings.TrimSuffix(cfg.App.BasePath, "/"); base != "" {
		mux.Handle(base+"/", http.StripPrefix(base, appHandler))
		mux.Handle(base, http.StripPrefix(base, appHandler))
	} else {
		mux.Handle("/", appHandler)
	}

	mw := middleware.New()
	mw.Use(middleware.Logger(logger))
	mw.Use(middleware.TrimSlash())
	return mw.Apply(mux), nil
}

// handleHealthCheck responds with OK status for liveness monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadyCheck(ready lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ready.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
