package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkedineese_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// TransformDuration tracks provider latency for successful transforms.
	TransformDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linkedineese_transform_duration_seconds",
		Help:    "Time spent waiting on the chat-completion provider.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"provider"})

	// InputChars tracks the distribution of accepted input lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkedineese_input_chars",
		Help:    "Number of characters in transform input text.",
		Buckets: []float64{25, 50, 100, 250, 500, 1000, 2500, 5000},
	})

	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkedineese_upstream_errors_total",
		Help: "Provider calls that failed, by upstream status (0 for transport errors).",
	}, []string{"provider", "status"})

	// ProviderConfigured reports whether each provider has a credential.
	ProviderConfigured = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "linkedineese_provider_configured",
		Help: "Whether a provider has an API key configured (1) or not (0).",
	}, []string{"provider"})
)
