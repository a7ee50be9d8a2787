package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HussainAbbasDev/linkedineese/internal/adapter"
	"github.com/HussainAbbasDev/linkedineese/internal/prompt"
	"github.com/HussainAbbasDev/linkedineese/internal/provider"
)

// stubAdapter records calls and returns a canned result.
type stubAdapter struct {
	available bool
	result    string
	err       error
	calls     int
	messages  []prompt.Message
}

func (s *stubAdapter) Name() string    { return "stub" }
func (s *stubAdapter) Available() bool { return s.available }
func (s *stubAdapter) Complete(ctx context.Context, messages []prompt.Message) (string, error) {
	s.calls++
	s.messages = messages
	return s.result, s.err
}

func postTransform(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/transform", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Error
}

func TestHandleTransformValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"missing text", `{}`, http.StatusBadRequest, msgTextRequired},
		{"null text", `{"text":null}`, http.StatusBadRequest, msgTextRequired},
		{"empty text", `{"text":""}`, http.StatusBadRequest, msgTextRequired},
		{"whitespace text", `{"text":"  \n\t "}`, http.StatusBadRequest, msgTextRequired},
		{"number text", `{"text":42}`, http.StatusBadRequest, msgTextRequired},
		{"array text", `{"text":["a"]}`, http.StatusBadRequest, msgTextRequired},
		{"too long", `{"text":"` + strings.Repeat("a", maxTextLength+1) + `"}`, http.StatusBadRequest, msgTextTooLong},
		{"invalid json", `{invalid`, http.StatusBadRequest, "invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAdapter{available: true, result: "unused"}
			w := postTransform(t, Transform(stub), tt.body)

			if w.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", w.Code, tt.wantCode)
			}
			if got := decodeError(t, w); got != tt.wantErr {
				t.Errorf("error: got %q, want %q", got, tt.wantErr)
			}
			if stub.calls != 0 {
				t.Errorf("provider calls: got %d, want 0", stub.calls)
			}
		})
	}
}

func TestHandleTransformLengthBoundary(t *testing.T) {
	t.Run("at limit", func(t *testing.T) {
		stub := &stubAdapter{available: true, result: "ok"}
		body, _ := json.Marshal(map[string]string{"text": strings.Repeat("b", maxTextLength)})
		w := postTransform(t, Transform(stub), string(body))

		if w.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("multibyte counted as characters", func(t *testing.T) {
		stub := &stubAdapter{available: true, result: "ok"}
		body, _ := json.Marshal(map[string]string{"text": strings.Repeat("é", maxTextLength)})
		w := postTransform(t, Transform(stub), string(body))

		if w.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("over limit checked on raw text", func(t *testing.T) {
		stub := &stubAdapter{available: true, result: "ok"}
		body, _ := json.Marshal(map[string]string{"text": " " + strings.Repeat("c", maxTextLength)})
		w := postTransform(t, Transform(stub), string(body))

		if w.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestHandleTransformWrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/transform", nil)
	w := httptest.NewRecorder()

	Transform(&stubAdapter{available: true}).ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleTransformNoAPIKey(t *testing.T) {
	stub := &stubAdapter{available: false}
	w := postTransform(t, Transform(stub), `{"text":"hello"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if got := decodeError(t, w); got != msgNoAPIKey {
		t.Errorf("error: got %q, want %q", got, msgNoAPIKey)
	}
	if stub.calls != 0 {
		t.Errorf("provider calls: got %d, want 0", stub.calls)
	}
}

func TestHandleTransformNoAPIKeyAfterValidation(t *testing.T) {
	stub := &stubAdapter{available: false}
	w := postTransform(t, Transform(stub), `{"text":""}`)

	if got := decodeError(t, w); got != msgTextRequired {
		t.Errorf("error: got %q, want %q", got, msgTextRequired)
	}
}

func TestHandleTransformSuccess(t *testing.T) {
	stub := &stubAdapter{available: true, result: "  Hello World  "}
	w := postTransform(t, Transform(stub), `{"text":"hello world"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", got)
	}

	var resp transformResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result != "Hello World" {
		t.Errorf("result: got %q, want %q", resp.Result, "Hello World")
	}
	if resp.TimingMs < 0 {
		t.Errorf("timing_ms should be >= 0, got %d", resp.TimingMs)
	}

	if stub.calls != 1 {
		t.Fatalf("provider calls: got %d, want 1", stub.calls)
	}
	want := prompt.Build("hello world")
	if len(stub.messages) != len(want) {
		t.Fatalf("messages: got %d, want %d", len(stub.messages), len(want))
	}
	if last := stub.messages[len(stub.messages)-1]; last.Content != "hello world" {
		t.Errorf("last message: got %q, want %q", last.Content, "hello world")
	}
}

func TestHandleTransformUpstreamStatus(t *testing.T) {
	stub := &stubAdapter{
		available: true,
		err: &adapter.StatusError{
			Provider:   "stub",
			StatusCode: http.StatusTooManyRequests,
			Body:       `{"error":{"message":"secret upstream detail"}}`,
		},
	}
	w := postTransform(t, Transform(stub), `{"text":"hello"}`)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	got := decodeError(t, w)
	if got != msgUpstream {
		t.Errorf("error: got %q, want %q", got, msgUpstream)
	}
	if strings.Contains(got, "secret") {
		t.Error("upstream body leaked to client")
	}
}

func TestHandleTransformInternalError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{"message passed through", errors.New("groq: request: connection refused"), "groq: request: connection refused"},
		{"empty message falls back", errors.New(""), msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAdapter{available: true, err: tt.err}
			w := postTransform(t, Transform(stub), `{"text":"hello"}`)

			if w.Code != http.StatusInternalServerError {
				t.Errorf("status: got %d, want %d", w.Code, http.StatusInternalServerError)
			}
			if got := decodeError(t, w); got != tt.wantErr {
				t.Errorf("error: got %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestHandleTransformOversizedBody(t *testing.T) {
	stub := &stubAdapter{available: true, result: "ok"}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 16)
		Transform(stub).ServeHTTP(w, r)
	})

	body, _ := json.Marshal(map[string]string{"text": strings.Repeat("x", 100)})
	req := httptest.NewRequest(http.MethodPost, "/api/transform", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHandleHealth(t *testing.T) {
	providers := []provider.Selection{
		{Name: "groq", Model: "llama3-8b-8192"},
		{Name: "openai", Model: "gpt-4o", APIKey: "sk-test"},
		{Name: "deepseek", Model: "deepseek-chat"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	Health(providers, "openai").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
	}

	var resp healthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status: got %q, want %q", resp.Status, "ok")
	}
	if resp.Active != "openai" {
		t.Errorf("active: got %q, want %q", resp.Active, "openai")
	}
	if len(resp.Providers) != 3 {
		t.Fatalf("providers count: got %d, want 3", len(resp.Providers))
	}
	if !resp.Providers["openai"].Available {
		t.Error("openai: got unavailable, want available")
	}
	groq := resp.Providers["groq"]
	if groq.Available {
		t.Error("groq: got available, want unavailable")
	}
	if groq.Reason != "no API key" {
		t.Errorf("groq reason: got %q, want %q", groq.Reason, "no API key")
	}
}

func TestHandleModels(t *testing.T) {
	models := []adapter.ModelInfo{
		{ID: "gpt-4o", Name: "OpenAI (gpt-4o)", Provider: "openai"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	w := httptest.NewRecorder()

	Models(models).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
	}

	var resp []adapter.ModelInfo
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("models count: got %d, want 1", len(resp))
	}
	if resp[0].ID != "gpt-4o" {
		t.Errorf("first model id: got %q, want %q", resp[0].ID, "gpt-4o")
	}
}
