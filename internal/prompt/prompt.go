package prompt

import (
	_ "embed"
	"strings"
)

// Roles understood by OpenAI-compatible chat-completion APIs.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

//go:embed system.txt
var systemPrompt string

// fewShot demonstrates the target style: a terse rewrite and a full post
// with line breaks, trailing emoji and hashtags.
var fewShot = []Message{
	{Role: RoleUser, Content: "I fixed a bug."},
	{Role: RoleAssistant, Content: "I successfully identified and resolved a critical bug, which enhanced system stability and improved the overall user experience."},
	{Role: RoleUser, Content: "I made a new feature for our app."},
	{Role: RoleAssistant, Content: "Thrilled to share that I have successfully engineered and deployed a pivotal new feature for our application! 🚀\n\nThis enhancement is a significant milestone that streamlines core processes and delivers immediate value to our users.\n\nGrateful for the journey and the incredible teamwork that made this possible.\n\n#Innovation #ProductDevelopment #Tech"},
}

// System returns the fixed system instructions.
func System() string {
	return strings.TrimSpace(systemPrompt)
}

// Build returns the full message sequence for text: system instructions,
// the few-shot turns, then text as the final user turn. Text is passed
// through untouched; callers validate it first.
func Build(text string) []Message {
	msgs := make([]Message, 0, len(fewShot)+2)
	msgs = append(msgs, Message{Role: RoleSystem, Content: System()})
	msgs = append(msgs, fewShot...)
	msgs = append(msgs, Message{Role: RoleUser, Content: text})
	return msgs
}
