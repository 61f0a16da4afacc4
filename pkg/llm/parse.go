package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// parseRecommendation turns the raw model content into a RecommendResult.
// Both provider clients funnel their first-choice content through here.
func parseRecommendation(content string) (*RecommendResult, error) {
	cleaned := cleanJSONResponse(content)

	var parsed struct {
		Recommendation string `json:"recommendation"`
		Insight        string `json:"insight"`
	}

	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		slog.Error("error parsing model content", "error", err, "content", content)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}

	if parsed.Recommendation == "" || parsed.Insight == "" {
		slog.Warn("model response missing expected keys", "content", content)
		return nil, ErrUpstreamContent
	}

	return &RecommendResult{
		Recommendation: parsed.Recommendation,
		Insight:        parsed.Insight,
	}, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
