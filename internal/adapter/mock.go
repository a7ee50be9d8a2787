package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/HussainAbbasDev/linkedineese/internal/prompt"
)

// MockAdapter returns simulated responses with a configurable delay.
// Used for development and testing without a real provider.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "mock" }

// Complete echoes the final user turn, trimmed, with its first letter
// capitalised.
func (m *MockAdapter) Complete(ctx context.Context, messages []prompt.Message) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	var text string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == prompt.RoleUser {
			text = messages[i].Content
			break
		}
	}

	out := strings.TrimSpace(text)
	if len(out) > 0 && out[0] >= 'a' && out[0] <= 'z' {
		out = strings.ToUpper(out[:1]) + out[1:]
	}
	return out, nil
}

func (m *MockAdapter) Available() bool { return true }
