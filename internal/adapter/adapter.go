package adapter

import (
	"context"
	"fmt"

	"github.com/HussainAbbasDev/linkedineese/internal/prompt"
)

// LLMAdapter defines the contract for chat-completion backends.
type LLMAdapter interface {
	Name() string
	Complete(ctx context.Context, messages []prompt.Message) (string, error)
	// Available reports whether the adapter has what it needs to make a
	// call, without making one.
	Available() bool
}

// ModelInfo is exposed via GET /api/models.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// StatusError is returned when the provider answers with a non-2xx status.
// Body holds the raw upstream response for server-side diagnosis only.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
}
