package handler

import (
	"net/http"

	"github.com/HussainAbbasDev/linkedineese/internal/adapter"
)

func Models(models []adapter.ModelInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models)
	}
}
