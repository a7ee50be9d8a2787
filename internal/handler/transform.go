package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/HussainAbbasDev/linkedineese/internal/adapter"
	"github.com/HussainAbbasDev/linkedineese/internal/metrics"
	"github.com/HussainAbbasDev/linkedineese/internal/middleware"
	"github.com/HussainAbbasDev/linkedineese/internal/prompt"
)

const maxTextLength = 5000

// Client-facing messages. Upstream details never reach the caller.
const (
	msgTextRequired = "Input text is required."
	msgTextTooLong  = "Input text cannot exceed 5000 characters."
	msgNoAPIKey     = "Server configuration error: No API key provided."
	msgUpstream     = "Failed to get a response from the AI service."
	msgInternal     = "An unexpected internal error occurred."
)

type transformRequest struct {
	Text json.RawMessage `json:"text"`
}

type transformResponse struct {
	Result   string `json:"result"`
	TimingMs int64  `json:"timing_ms"`
}

// Transform rewrites the posted text through a. Validation runs before the
// credential check, which runs before any outbound call.
func Transform(a adapter.LLMAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req transformRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		text, ok := textField(req.Text)
		if !ok || strings.TrimSpace(text) == "" {
			writeError(w, http.StatusBadRequest, msgTextRequired)
			return
		}
		chars := utf8.RuneCountInString(text)
		if chars > maxTextLength {
			writeError(w, http.StatusBadRequest, msgTextTooLong)
			return
		}

		log := slog.With(
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"provider", a.Name(),
		)

		if !a.Available() {
			log.Error("no API key configured")
			writeError(w, http.StatusInternalServerError, msgNoAPIKey)
			return
		}

		metrics.InputChars.Observe(float64(chars))
		log.Info("transform", "input_chars", chars)

		callStart := time.Now()
		result, err := a.Complete(r.Context(), prompt.Build(text))
		if err != nil {
			var statusErr *adapter.StatusError
			if errors.As(err, &statusErr) {
				metrics.UpstreamErrors.WithLabelValues(a.Name(), strconv.Itoa(statusErr.StatusCode)).Inc()
				log.Error("provider error", "status", statusErr.StatusCode, "body", statusErr.Body)
				code := statusErr.StatusCode
				if code < 100 || code > 999 {
					code = http.StatusBadGateway
				}
				writeError(w, code, msgUpstream)
				return
			}

			metrics.UpstreamErrors.WithLabelValues(a.Name(), "0").Inc()
			log.Error("transform failed", "error", err)
			msg := err.Error()
			if msg == "" {
				msg = msgInternal
			}
			writeError(w, http.StatusInternalServerError, msg)
			return
		}
		metrics.TransformDuration.WithLabelValues(a.Name()).Observe(time.Since(callStart).Seconds())

		writeJSON(w, http.StatusOK, transformResponse{
			Result:   strings.TrimSpace(result),
			TimingMs: time.Since(start).Milliseconds(),
		})
	}
}

// textField reports the string value of a raw "text" field. Missing, null
// and non-string values are not ok.
func textField(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
