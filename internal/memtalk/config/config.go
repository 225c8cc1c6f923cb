package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the configuration for the chat client
type Config struct {
	Model             string `toml:"model" mapstructure:"model"`                             // Model used for conversation turns
	ProfileModel      string `toml:"profile_model" mapstructure:"profile_model"`             // Model used for profile revision requests
	BaseURL           string `toml:"base_url" mapstructure:"base_url"`
	Token             string `toml:"token" mapstructure:"token"`
	PromptFile        string `toml:"prompt_file" mapstructure:"prompt_file"`                 // Plain-text system prompt read at startup
	ProfileFile       string `toml:"profile_file" mapstructure:"profile_file"`               // Accumulated user profile
	ProfileBackupFile string `toml:"profile_backup_file" mapstructure:"profile_backup_file"` // Last known-good profile, rollback source
	ProfilePrompt     string `toml:"profile_prompt" mapstructure:"profile_prompt"`           // Optional TOML prompt template for profile revision
	ProfileMaxEdits   int    `toml:"profile_max_edits" mapstructure:"profile_max_edits"`     // Diff spans above this trigger a rollback
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Model:             "gpt-3.5-turbo",
		ProfileModel:      "gpt-3.5-turbo-0125",
		BaseURL:           "https://api.openai.com/v1",
		Token:             "$OPENAI_API_KEY", // Default to env var
		PromptFile:        "system_prompts/prompt.md",
		ProfileFile:       "memories/userprofile.txt",
		ProfileBackupFile: "memories/userprofile_backup.txt",
		ProfilePrompt:     "",
		ProfileMaxEdits:   200,
	}
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	// Expand environment variable references in the token
	token, err := expandEnvVar(config.Token)
	if err != nil {
		return nil, fmt.Errorf("error expanding token: %v", err)
	}
	config.Token = token

	// Convert file paths to absolute paths
	for _, p := range []*string{&config.PromptFile, &config.ProfileFile, &config.ProfileBackupFile, &config.ProfilePrompt} {
		if *p == "" {
			continue
		}
		absPath, err := ResolvePath(*p)
		if err != nil {
			return nil, fmt.Errorf("error resolving path '%s': %v", *p, err)
		}
		*p = absPath
	}

	return config, nil
}

// Validate checks that the configuration is complete enough to start a chat.
// A missing token is a startup-fatal condition.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("API token is not configured. Set it in the config file (token) or environment variable (OPENAI_API_KEY)")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is not configured. Set it in the config file (base_url) or environment variable (MEMTALK_BASE_URL)")
	}
	if c.Model == "" {
		return fmt.Errorf("model is not configured")
	}
	return nil
}
