package llm

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Sampling parameters sent with every completion request.
const (
	Temperature = 0.7
	MaxTokens   = 1024
	TopP        = 1.0
)

// Client wraps the OpenAI-compatible Groq endpoint and produces guidance answers
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new LLM client for the given base URL, API key and model.
// Retries are disabled: a failed call is reported to the caller as is.
func NewClient(baseURL, apiKey, model string) *Client {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)
	return &Client{
		client: &client,
		model:  model,
	}
}

// Model returns the model identifier used for completions
func (c *Client) Model() string {
	return c.model
}
