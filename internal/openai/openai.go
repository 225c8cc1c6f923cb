package openai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/memtalk/memtalk/internal/memtalk"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-3.5-turbo"
)

// ChatCompletionRequest represents the request body for the Chat Completions API
type ChatCompletionRequest struct {
	Model       string            `json:"model"`
	Messages    []memtalk.Message `json:"messages"`
	Temperature *float64          `json:"temperature,omitempty"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
}

// ChatCompletionResponse represents the response from the Chat Completions API
type ChatCompletionResponse struct {
	Choices []ChatCompletionChoice `json:"choices"`
}

// ChatCompletionChoice represents a single candidate completion
type ChatCompletionChoice struct {
	Message memtalk.Message `json:"message"`
}

// Client is a Chat Completions API client
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	debug      bool
}

// NewClient creates a new Chat Completions client
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
	}
}

// SetDebug enables or disables debug output
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// Complete sends a chat completion request and returns the first candidate's
// message content. A missing or empty candidate list yields an empty string,
// not an error; the service occasionally returns one for degenerate inputs.
func (c *Client) Complete(reqBody ChatCompletionRequest) (string, error) {
	// Convert request body to JSON
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %v", err)
	}

	if c.debug {
		fmt.Fprintf(os.Stderr, "Request body: %s\n", string(jsonData))
	}

	// Create HTTP request
	req, err := http.NewRequest("POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	// Send request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if c.debug {
		fmt.Fprintf(os.Stderr, "Response status: %s\n", resp.Status)
	}

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %v", err)
	}

	// Check for error response
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("API call failed: %s", string(body))
	}

	// Parse response
	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("error parsing response: %v", err)
	}

	if len(result.Choices) == 0 {
		return "", nil
	}

	return result.Choices[0].Message.Content, nil
}
