// Package ai wraps the outbound chat completion call: one opaque
// function taking an ordered message list and returning assistant text.
package ai

import (
	"context"
	"strings"
)

// Message roles. Anything else is coerced to "user" before sending.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in the model payload.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the input to a completion call.
type ChatRequest struct {
	Messages    []Message
	Model       string  // optional override of the provider default
	Temperature float64 // 0 means provider default
}

// Usage carries token accounting from the provider.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// ChatReply is the assistant's reply.
type ChatReply struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// Provider is a chat completion backend.
type Provider interface {
	// Complete sends the request and returns the assistant reply.
	// Errors are one of *ValidationError, *UpstreamError, *TransportError.
	Complete(ctx context.Context, req *ChatRequest) (*ChatReply, error)
}

// Normalize rewrites a message list to satisfy the strict
// alternating-role contract some providers enforce:
//   - unrecognized roles become "user"
//   - blank content becomes a single space
//   - consecutive messages with the same non-system role are folded
//     together with a newline
//   - a synthetic leading user message is inserted when the first
//     non-system message is not from the user
//
// An empty input yields a ValidationError.
func Normalize(messages []Message) ([]Message, error) {
	if len(messages) == 0 {
		return nil, &ValidationError{Msg: "empty message list"}
	}

	coerced := make([]Message, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != RoleSystem && role != RoleAssistant {
			role = RoleUser
		}
		content := strings.TrimSpace(m.Content)
		if content == "" {
			content = " "
		}
		coerced = append(coerced, Message{Role: role, Content: content})
	}

	var out []Message
	for _, m := range coerced {
		if m.Role != RoleSystem && len(out) > 0 {
			last := &out[len(out)-1]
			if last.Role == m.Role {
				last.Content = last.Content + "\n" + m.Content
				continue
			}
		}
		out = append(out, m)
	}

	// Insert a synthetic user turn if the first non-system message is not
	// from the user.
	for i, m := range out {
		if m.Role == RoleSystem {
			continue
		}
		if m.Role != RoleUser {
			withLead := make([]Message, 0, len(out)+1)
			withLead = append(withLead, out[:i]...)
			withLead = append(withLead, Message{Role: RoleUser, Content: " "})
			withLead = append(withLead, out[i:]...)
			out = withLead
		}
		break
	}

	return out, nil
}
