package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leofalp/deckgen/providers/ai"
)

// newTestProvider points a provider at a local test server.
func newTestProvider(serverURL string) ai.Provider {
	return New().WithAPIKey("test-key").WithBaseURL(serverURL)
}

func contentRequest() ai.ContentRequest {
	return ai.ContentRequest{
		Prompt:       "Create slide 1 of 3",
		SystemPrompt: "You are a presentation designer.",
		MaxTokens:    2000,
		Temperature:  0.7,
		Slot:         ai.Slot{Topic: "t", Index: 0, Count: 3},
	}
}

// TestGenerateContent_Success verifies the happy path: request shape, auth
// header, and response mapping including usage.
func TestGenerateContent_Success(t *testing.T) {
	var captured chatCompletionsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		_ = json.NewEncoder(w).Encode(chatCompletionsResponse{
			Model: "gpt-4o-mini",
			Choices: []chatChoice{{
				Message:      chatMessage{Role: "assistant", Content: `{"title": "Hello"}`},
				FinishReason: "stop",
			}},
			Usage: &chatUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		})
	}))
	defer server.Close()

	resp, err := newTestProvider(server.URL).GenerateContent(context.Background(), contentRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content != `{"title": "Hello"}` {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.FinishReason != "stop" {
		t.Errorf("finish reason = %q", resp.FinishReason)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 30 {
		t.Errorf("usage not mapped: %+v", resp.Usage)
	}

	if captured.Model != defaultModel {
		t.Errorf("model = %q, want default %q", captured.Model, defaultModel)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Errorf("expected system + user messages, got %+v", captured.Messages)
	}
}

// TestGenerateContent_NoAPIKey verifies that a missing key is a rejection
// before any network traffic.
func TestGenerateContent_NoAPIKey(t *testing.T) {
	p := New().WithAPIKey("").WithBaseURL("http://127.0.0.1:0")

	_, err := p.GenerateContent(context.Background(), contentRequest())
	if !errors.Is(err, ai.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

// TestGenerateContent_ErrorClassification verifies that HTTP failure codes
// map onto the right failure classes.
func TestGenerateContent_ErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusTooManyRequests, ai.ErrUnavailable},
		{http.StatusInternalServerError, ai.ErrUnavailable},
		{http.StatusRequestTimeout, ai.ErrTimeout},
		{http.StatusUnauthorized, ai.ErrRejected},
		{http.StatusBadRequest, ai.ErrRejected},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))

		_, err := newTestProvider(server.URL).GenerateContent(context.Background(), contentRequest())
		server.Close()

		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: got %v, want %v", tc.status, err, tc.want)
		}
	}
}

// TestGenerateContent_EmptyChoices verifies that a 200 with no usable choice
// is a rejection, letting the orchestrator fall through.
func TestGenerateContent_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(chatCompletionsResponse{Model: "gpt-4o-mini"})
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).GenerateContent(context.Background(), contentRequest())
	if !errors.Is(err, ai.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

// TestGenerateContent_SchemaBecomesJSONSchemaFormat verifies the structured
// output contract is forwarded as a json_schema response format.
func TestGenerateContent_SchemaBecomesJSONSchemaFormat(t *testing.T) {
	var captured chatCompletionsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(chatCompletionsResponse{
			Choices: []chatChoice{{Message: chatMessage{Content: "{}"}, FinishReason: "stop"}},
		})
	}))
	defer server.Close()

	req := contentRequest()
	req.ResponseFormat = &ai.ResponseFormat{Type: "json_object"}

	if _, err := newTestProvider(server.URL).GenerateContent(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format not forwarded: %+v", captured.ResponseFormat)
	}
}

// TestGenerateContent_StyleHintsAppended verifies style hints travel as
// trailing prompt lines.
func TestGenerateContent_StyleHintsAppended(t *testing.T) {
	req := contentRequest()
	req.Style = ai.StyleHints{Tone: "casual", Audience: "students"}

	prompt := buildUserPrompt(req)
	if prompt == req.Prompt {
		t.Fatal("style hints were not appended")
	}
}
