package provider

import (
	"strings"

	"github.com/HussainAbbasDev/linkedineese/internal/config"
)

// Descriptor describes one OpenAI-compatible chat-completion provider and
// where its settings come from.
type Descriptor struct {
	Name           string
	DefaultBaseURL string
	Model          string
	APIKey         func(config.Config) string
	BaseURL        func(config.Config) string
}

// Selection is a descriptor resolved against a concrete config.
type Selection struct {
	Name    string
	BaseURL string
	Model   string
	APIKey  string
}

// HasCredential reports whether an API key resolved.
func (s Selection) HasCredential() bool {
	return s.APIKey != ""
}

// Descriptors lists providers in priority order. The last entry is the
// fallback and is selected even without a credential.
var Descriptors = []Descriptor{
	{
		Name:           "groq",
		DefaultBaseURL: "https://api.groq.com/openai/v1",
		Model:          "llama3-8b-8192",
		APIKey:         func(c config.Config) string { return c.GroqAPIKey },
		BaseURL:        func(c config.Config) string { return c.GroqBaseURL },
	},
	{
		Name:           "openai",
		DefaultBaseURL: "https://api.openai.com/v1",
		Model:          "gpt-4o",
		APIKey:         func(c config.Config) string { return c.OpenAIAPIKey },
		BaseURL:        func(c config.Config) string { return c.OpenAIBaseURL },
	},
	{
		Name:           "deepseek",
		DefaultBaseURL: "https://api.deepseek.com",
		Model:          "deepseek-chat",
		APIKey:         func(c config.Config) string { return c.DeepSeekAPIKey },
		BaseURL:        func(c config.Config) string { return c.DeepSeekBaseURL },
	},
}

// Resolve applies cfg to d. A blank base URL falls back to the descriptor's
// own default, never to another provider's.
func (d Descriptor) Resolve(cfg config.Config) Selection {
	baseURL := strings.TrimSpace(d.BaseURL(cfg))
	if baseURL == "" {
		baseURL = d.DefaultBaseURL
	}
	return Selection{
		Name:    d.Name,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   d.Model,
		APIKey:  strings.TrimSpace(d.APIKey(cfg)),
	}
}

// Resolve resolves every descriptor, in priority order.
func Resolve(cfg config.Config) []Selection {
	out := make([]Selection, 0, len(Descriptors))
	for _, d := range Descriptors {
		out = append(out, d.Resolve(cfg))
	}
	return out
}

// Select returns the first provider with a credential, or the fallback
// provider when none has one. Callers must check HasCredential before
// making a call.
func Select(cfg config.Config) Selection {
	all := Resolve(cfg)
	for _, s := range all {
		if s.HasCredential() {
			return s
		}
	}
	return all[len(all)-1]
}
