package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HussainAbbasDev/linkedineese/internal/adapter"
	"github.com/HussainAbbasDev/linkedineese/internal/handler"
	"github.com/HussainAbbasDev/linkedineese/internal/middleware"
	"github.com/HussainAbbasDev/linkedineese/internal/provider"
	"github.com/HussainAbbasDev/linkedineese/internal/web"
)

// SetupMux wires handlers with the full middleware chain. providers is the
// resolved provider list reported by /api/health.
func SetupMux(a adapter.LLMAdapter, providers []provider.Selection, models []adapter.ModelInfo, maxBodyBytes int64) http.Handler {
	transform := handler.Transform(a)

	mux := http.NewServeMux()
	mux.Handle("/", web.Handler())
	mux.HandleFunc("/api/health", handler.Health(providers, a.Name()))
	mux.HandleFunc("/api/models", handler.Models(models))
	mux.HandleFunc("/api/transform", transform)
	mux.HandleFunc("/api/linkedinify", transform)
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux, maxBodyBytes)
}
