package port

import "context"

// ChatMessage is one message in a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter produces a completion for a conversation with a hosted
// language model.
type ChatCompleter interface {
	// Complete sends the messages and returns the assistant's reply text.
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
