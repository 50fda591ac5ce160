package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// ErrNoChoices is returned when the provider answers without any choice
var ErrNoChoices = errors.New("no choices in response")

// GenerateAnswer asks the model to answer userText. hasImage only changes the
// wording of the user message, the image itself is never sent.
//
// Provider errors are returned unwrapped so callers can show their text.
func (c *Client) GenerateAnswer(ctx context.Context, userText string, hasImage bool) (string, error) {
	res, err := c.client.Chat.Completions.New(ctx, c.completionParams(userText, hasImage),
		option.WithJSONSet("stream", false),
	)
	if err != nil {
		return "", err
	}

	if len(res.Choices) == 0 {
		return "", ErrNoChoices
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}

func (c *Client) completionParams(userText string, hasImage bool) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(UserMessage(userText, hasImage)),
		},
		Temperature: openai.Float(Temperature),
		MaxTokens:   openai.Int(MaxTokens),
		TopP:        openai.Float(TopP),
	}
}
