package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type completionRequest struct {
	Model          string  `json:"model"`
	Temperature    float64 `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

type fakeCompletionServer struct {
	*httptest.Server
	calls       int
	lastAuth    string
	lastRequest completionRequest
}

// newFakeCompletionServer stands in for the Groq endpoint, replying to every
// chat completion call with a message whose content is the given string.
func newFakeCompletionServer(t *testing.T, status int, content string) *fakeCompletionServer {
	t.Helper()
	fake := &fakeCompletionServer{}
	fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.calls++
		fake.lastAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&fake.lastRequest)

		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"upstream unavailable"}}`))
			return
		}

		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1,
			"model":   groqModel,
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(fake.Close)
	return fake
}

var testInput = RecommendInput{
	DogBreed:       "Labrador",
	DietPreference: "grain-free",
	ProductType:    "food",
}

func TestGroqRecommend_Success(t *testing.T) {
	srv := newFakeCompletionServer(t, http.StatusOK,
		`{"recommendation":"ABC Grain-Free Kibble","insight":"60% of Labrador owners buy 30lb bags"}`)

	client := NewGroqClient("test-key", srv.URL)
	result, err := client.Recommend(context.Background(), testInput)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Recommendation != "ABC Grain-Free Kibble" {
		t.Errorf("got recommendation %q", result.Recommendation)
	}
	if result.Insight != "60% of Labrador owners buy 30lb bags" {
		t.Errorf("got insight %q", result.Insight)
	}
	if srv.calls != 1 {
		t.Errorf("expected exactly one upstream call, got %d", srv.calls)
	}
}

func TestGroqRecommend_RequestContract(t *testing.T) {
	srv := newFakeCompletionServer(t, http.StatusOK,
		`{"recommendation":"a","insight":"b"}`)

	client := NewGroqClient("test-key", srv.URL)
	if _, err := client.Recommend(context.Background(), testInput); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if srv.lastAuth != "Bearer test-key" {
		t.Errorf("got Authorization %q", srv.lastAuth)
	}
	if srv.lastRequest.Model != groqModel {
		t.Errorf("got model %q", srv.lastRequest.Model)
	}
	if srv.lastRequest.Temperature != 0.7 {
		t.Errorf("got temperature %v", srv.lastRequest.Temperature)
	}
	if srv.lastRequest.ResponseFormat.Type != "json_object" {
		t.Errorf("got response_format %q", srv.lastRequest.ResponseFormat.Type)
	}

	if len(srv.lastRequest.Messages) != 1 {
		t.Fatalf("expected one message, got %d", len(srv.lastRequest.Messages))
	}
	prompt := srv.lastRequest.Messages[0].Content
	for _, field := range []string{"Labrador", "grain-free", "food"} {
		if !strings.Contains(prompt, field) {
			t.Errorf("prompt missing input field %q", field)
		}
	}
}

func TestGroqRecommend_UpstreamStatusError(t *testing.T) {
	srv := newFakeCompletionServer(t, http.StatusInternalServerError, "")

	client := NewGroqClient("test-key", srv.URL)
	_, err := client.Recommend(context.Background(), testInput)

	if !errors.Is(err, ErrUpstreamTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if srv.calls != 1 {
		t.Errorf("expected exactly one upstream call (no retry), got %d", srv.calls)
	}
}

func TestGroqRecommend_InvalidContent(t *testing.T) {
	srv := newFakeCompletionServer(t, http.StatusOK, "here is your recommendation")

	client := NewGroqClient("test-key", srv.URL)
	_, err := client.Recommend(context.Background(), testInput)

	if !errors.Is(err, ErrUpstreamFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestGroqRecommend_MissingKeys(t *testing.T) {
	srv := newFakeCompletionServer(t, http.StatusOK, `{"recommendation":"ABC Kibble"}`)

	client := NewGroqClient("test-key", srv.URL)
	_, err := client.Recommend(context.Background(), testInput)

	if !errors.Is(err, ErrUpstreamContent) {
		t.Fatalf("expected content error, got %v", err)
	}
}
