package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/HussainAbbasDev/linkedineese/internal/prompt"
	"github.com/HussainAbbasDev/linkedineese/internal/provider"
)

const (
	maxTokens   = 1024
	temperature = 0.7
)

// ChatAdapter calls an OpenAI-compatible /chat/completions endpoint
// (Groq, OpenAI, DeepSeek) with a single non-streaming request.
type ChatAdapter struct {
	provider provider.Selection
	client   openai.Client
}

// NewChatAdapter builds an adapter for sel. A nil httpClient uses a client
// without a timeout; the request context is the only deadline.
func NewChatAdapter(sel provider.Selection, httpClient *http.Client) *ChatAdapter {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ChatAdapter{
		provider: sel,
		client: openai.NewClient(
			option.WithBaseURL(strings.TrimRight(sel.BaseURL, "/")+"/"),
			option.WithAPIKey(sel.APIKey),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(0),
		),
	}
}

func (c *ChatAdapter) Name() string {
	return c.provider.Name
}

// Model returns the model id sent upstream.
func (c *ChatAdapter) Model() string {
	return c.provider.Model
}

func (c *ChatAdapter) Available() bool {
	return c.provider.HasCredential()
}

func (c *ChatAdapter) Complete(ctx context.Context, messages []prompt.Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.provider.Model),
		Messages:    toParams(messages),
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, option.WithJSONSet("stream", false))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &StatusError{
				Provider:   c.provider.Name,
				StatusCode: apiErr.StatusCode,
				Body:       string(apiErr.DumpResponse(true)),
			}
		}
		return "", fmt.Errorf("%s: request: %w", c.provider.Name, err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func toParams(messages []prompt.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case prompt.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case prompt.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
