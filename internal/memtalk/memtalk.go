// Package memtalk provides the core conversation types shared by the chat
// loop, the completion client, and the profile reconciler.
package memtalk

import (
	"strings"

	"github.com/google/uuid"
)

// Message roles accepted by the completion service.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    string `json:"role"`    // "system", "user" or "assistant"
	Content string `json:"content"` // Message content
}

// Conversation is the append-only message log for one process run.
// The first message, if present, is the system prompt loaded at startup.
type Conversation struct {
	ID       string
	Messages []Message
}

// NewConversation creates an empty conversation with a fresh session ID.
// If systemPrompt is non-empty it becomes the first message of the log.
func NewConversation(systemPrompt string) *Conversation {
	c := &Conversation{
		ID:       uuid.New().String(),
		Messages: []Message{},
	}
	if systemPrompt != "" {
		c.Messages = append(c.Messages, Message{Role: RoleSystem, Content: systemPrompt})
	}
	return c
}

// Append adds a message to the log.
func (c *Conversation) Append(role, content string) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content})
}

// AppendUser adds a user message unless the input is empty after trimming.
// Silence is not a turn: blank input leaves the log untouched but the turn
// still forwards whatever has accumulated so far.
func (c *Conversation) AppendUser(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}
	c.Append(RoleUser, trimmed)
	return true
}

// AppendAssistant adds an assistant message unless the reply is empty after
// trimming.
func (c *Conversation) AppendAssistant(reply string) bool {
	if strings.TrimSpace(reply) == "" {
		return false
	}
	c.Append(RoleAssistant, reply)
	return true
}

// ShortID returns the shortened session ID (first 8 characters).
func (c *Conversation) ShortID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}

// MessageCount returns the number of messages in the log.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}
