package memtalk

import "testing"

func TestNewConversation(t *testing.T) {
	tests := []struct {
		name         string
		systemPrompt string
		wantCount    int
	}{
		{
			name:         "with system prompt",
			systemPrompt: "You are a helpful assistant.",
			wantCount:    1,
		},
		{
			name:         "without system prompt",
			systemPrompt: "",
			wantCount:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConversation(tt.systemPrompt)
			if c.MessageCount() != tt.wantCount {
				t.Errorf("MessageCount() = %d, want %d", c.MessageCount(), tt.wantCount)
			}
			if tt.wantCount == 1 {
				if c.Messages[0].Role != RoleSystem {
					t.Errorf("first message role = %q, want %q", c.Messages[0].Role, RoleSystem)
				}
				if c.Messages[0].Content != tt.systemPrompt {
					t.Errorf("first message content = %q, want %q", c.Messages[0].Content, tt.systemPrompt)
				}
			}
			if c.ID == "" {
				t.Error("conversation ID should not be empty")
			}
		})
	}
}

func TestAppendUser(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAdded  bool
		wantGrowth int
	}{
		{name: "normal input", input: "hello", wantAdded: true, wantGrowth: 1},
		{name: "input with surrounding whitespace", input: "  hi there \n", wantAdded: true, wantGrowth: 1},
		{name: "empty input", input: "", wantAdded: false, wantGrowth: 0},
		{name: "whitespace-only input", input: "   \t\n", wantAdded: false, wantGrowth: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConversation("")
			before := c.MessageCount()
			added := c.AppendUser(tt.input)
			if added != tt.wantAdded {
				t.Errorf("AppendUser(%q) = %v, want %v", tt.input, added, tt.wantAdded)
			}
			if got := c.MessageCount() - before; got != tt.wantGrowth {
				t.Errorf("log grew by %d, want %d", got, tt.wantGrowth)
			}
			if tt.wantAdded && c.Messages[len(c.Messages)-1].Role != RoleUser {
				t.Errorf("appended role = %q, want %q", c.Messages[len(c.Messages)-1].Role, RoleUser)
			}
		})
	}
}

func TestAppendAssistant(t *testing.T) {
	c := NewConversation("")

	if added := c.AppendAssistant("  \n"); added {
		t.Error("whitespace-only reply should not be appended")
	}
	if c.MessageCount() != 0 {
		t.Errorf("MessageCount() = %d, want 0", c.MessageCount())
	}

	if added := c.AppendAssistant("hello back"); !added {
		t.Error("non-empty reply should be appended")
	}
	if c.Messages[len(c.Messages)-1].Role != RoleAssistant {
		t.Errorf("appended role = %q, want %q", c.Messages[len(c.Messages)-1].Role, RoleAssistant)
	}
}

func TestShortID(t *testing.T) {
	c := NewConversation("")
	if len(c.ShortID()) != 8 {
		t.Errorf("ShortID() length = %d, want 8", len(c.ShortID()))
	}

	c.ID = "abc"
	if c.ShortID() != "abc" {
		t.Errorf("ShortID() = %q, want %q", c.ShortID(), "abc")
	}
}
