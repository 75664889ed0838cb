// Package chat keeps the REPL conversation: a fixed system prompt built
// from the organiser document plus the accumulated turn history.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/sadopc/ambrogio/internal/llm"
)

type Manager struct {
	client       *llm.Client
	systemPrompt string
	history      []llm.Message
}

// NewManager builds a conversation seeded with today's date and the full
// organiser content. The document is captured once; the REPL reflects the
// file as it was when the session started.
func NewManager(client *llm.Client, organiserContent string) *Manager {
	today := time.Now().Format("2006-01-02")
	return &Manager{
		client:       client,
		systemPrompt: buildSystemPrompt(today, organiserContent),
	}
}

func buildSystemPrompt(today, organiserContent string) string {
	return fmt.Sprintf(`You are Ambrogio, a personal assistant that helps the user understand their schedule and tasks.

You have access to the user's daily organiser. The format is:
- Dates are marked with `+"`# YYYY-MM-DD`"+`
- Scheduled items: `+"`**HH:MM** description`"+`
- Open tasks are marked with [TODO]
- Completed tasks are marked with [DONE]

Today's date is: %s

---
%s
---

Answer questions about the schedule concisely. When listing items, use bullet points.
If asked about "tomorrow", calculate the date based on today.
If asked about "this week", consider the 7 days starting from today.`, today, organiserContent)
}

// Send submits the user input with the full context and returns the reply.
// History is only extended after a successful response so a failed call
// leaves no orphaned turns behind.
func (m *Manager) Send(ctx context.Context, input string) (string, error) {
	messages := make([]llm.Message, 0, len(m.history)+2)
	messages = append(messages, llm.System(m.systemPrompt))
	messages = append(messages, m.history...)
	messages = append(messages, llm.User(input))

	response, err := m.client.Chat(ctx, messages)
	if err != nil {
		return "", err
	}

	m.history = append(m.history, llm.User(input), llm.Assistant(response))
	return response, nil
}
