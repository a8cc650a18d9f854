package ai

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const maxResponseTokens = 500

// Client wraps the completion API used for financial insights. A nil Client
// means the feature is disabled (no API key configured); callers must check
// Enabled before use.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient returns nil when apiKey is empty so the insights feature stays
// cleanly disabled rather than failing on first use.
func NewClient(apiKey, model string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

func (c *Client) Enabled() bool {
	return c != nil
}

// Complete sends one non-streaming chat completion: the financial context as
// system instructions and the user's prompt as the user turn.
func (c *Client) Complete(ctx context.Context, systemContent, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxResponseTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemContent},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		reply = "No response."
	}
	return reply, nil
}
