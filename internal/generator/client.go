package generator

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps an OpenAI-compatible chat completion endpoint
type Client struct {
	client       *openai.Client
	defaultModel string
}

// NewClient creates a generator client for the given endpoint
func NewClient(baseURL, apiKey, defaultModel string) *Client {
	options := []option.RequestOption{}
	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		options = append(options, option.WithAPIKey(apiKey))
	}

	client := openai.NewClient(options...)
	return &Client{client: &client, defaultModel: defaultModel}
}

// Generate produces a completion for the prompt. The model identifier is
// resolved through the fixed alias table; unknown identifiers use the default.
func (c *Client) Generate(ctx context.Context, prompt, model string, maxTokens int) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:     ResolveModel(model, c.defaultModel),
		MaxTokens: openai.Int(int64(maxTokens)),
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("generator returned no content choices")
	}

	return resp.Choices[0].Message.Content, nil
}
