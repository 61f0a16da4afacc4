package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(30*time.Second),
		option.WithMaxRetries(0),
	)
	return &AnthropicClient{
		client: &client,
		model:  anthropic.ModelClaudeHaiku4_5,
	}
}

func (c *AnthropicClient) Recommend(ctx context.Context, input RecommendInput) (*RecommendResult, error) {
	// The Messages API has no json_object response format; the prompt itself
	// demands strict JSON and parseRecommendation strips any fencing.
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   1024,
		Temperature: anthropic.Float(0.7),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(input))),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("%w: no content in model response", ErrUpstreamTransport)
	}

	return parseRecommendation(resp.Content[0].Text)
}
