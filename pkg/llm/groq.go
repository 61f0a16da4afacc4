package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Groq exposes an OpenAI-compatible chat completion surface.
const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

const groqModel = "llama3-8b-8192"

type GroqClient struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewGroqClient builds the default recommender. An empty baseURL selects the
// public Groq endpoint; tests point it at a local server.
func NewGroqClient(apiKey, baseURL string) *GroqClient {
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(30*time.Second),
		// Upstream failures surface to the caller, never retried.
		option.WithMaxRetries(0),
	)
	return &GroqClient{
		client: &client,
		model:  groqModel,
	}
}

func (c *GroqClient) Recommend(ctx context.Context, input RecommendInput) (*RecommendResult, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(input)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Temperature: openai.Float(0.7),
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in completion response", ErrUpstreamTransport)
	}

	return parseRecommendation(resp.Choices[0].Message.Content)
}
