package llm

import (
	"context"
	"errors"
)

type RecommendInput struct {
	DogBreed       string
	DietPreference string
	ProductType    string
}

type RecommendResult struct {
	Recommendation string
	Insight        string
}

// Upstream failure classes. Recommend implementations wrap the underlying
// cause with %w so callers can classify with errors.Is.
var (
	ErrUpstreamTransport = errors.New("failed to connect to recommendation service")
	ErrUpstreamFormat    = errors.New("invalid JSON from model")
	ErrUpstreamContent   = errors.New("model deviated from requested format")
)

type Recommender interface {
	Recommend(ctx context.Context, input RecommendInput) (*RecommendResult, error)
}
