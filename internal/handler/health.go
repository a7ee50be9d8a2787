package handler

import (
	"net/http"

	"github.com/HussainAbbasDev/linkedineese/internal/provider"
)

type providerStatus struct {
	Available bool   `json:"available"`
	Model     string `json:"model"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status    string                    `json:"status"`
	Active    string                    `json:"active"`
	Providers map[string]providerStatus `json:"providers"`
}

// Health reports which providers have credentials and which one serves
// transforms. It never calls a provider.
func Health(providers []provider.Selection, active string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make(map[string]providerStatus, len(providers))
		for _, p := range providers {
			s := providerStatus{Available: p.HasCredential(), Model: p.Model}
			if !s.Available {
				s.Reason = "no API key"
			}
			statuses[p.Name] = s
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Active:    active,
			Providers: statuses,
		})
	}
}
