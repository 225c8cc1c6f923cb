package prompt

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default messages used for the profile revision request when no prompt
// template file is configured. The user payload is a placeholder; wiring the
// live chat history into this request is still pending.
const (
	DefaultProfileSystem = "Profile_check"
	DefaultProfileUser   = "user_chat_log_content"
)

// Prompt represents the structure of a TOML prompt file
type Prompt struct {
	System string `toml:"system"`
	User   string `toml:"user"`
}

// LoadPrompt loads a prompt file and returns its contents
func LoadPrompt(filePath string) (*Prompt, error) {
	var prompt Prompt
	if _, err := toml.DecodeFile(filePath, &prompt); err != nil {
		return nil, fmt.Errorf("error decoding prompt file: %v", err)
	}
	return &prompt, nil
}

// DefaultProfilePrompt returns the built-in profile revision exchange.
func DefaultProfilePrompt() *Prompt {
	return &Prompt{
		System: DefaultProfileSystem,
		User:   DefaultProfileUser,
	}
}

// ReadSystemPrompt reads the plain-text initial system prompt.
// A missing or unreadable file is not fatal; the caller falls back to an
// empty prompt and reports the error on stderr.
func ReadSystemPrompt(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
