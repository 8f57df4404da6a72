package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leofalp/deckgen/providers/ai"
)

func newTestProvider(serverURL string) ai.Provider {
	return New().WithAPIKey("test-key").WithBaseURL(serverURL)
}

func contentRequest() ai.ContentRequest {
	return ai.ContentRequest{
		Prompt:       "Create slide 2 of 4",
		SystemPrompt: "You are a presentation designer.",
		MaxTokens:    2000,
		Temperature:  0.7,
		Slot:         ai.Slot{Topic: "t", Index: 1, Count: 4},
	}
}

// TestGenerateContent_Success verifies the request shape (model in path, key
// as query parameter, system instruction) and response mapping.
func TestGenerateContent_Success(t *testing.T) {
	var captured generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/models/"+defaultModel) {
			t.Errorf("model missing from path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key query parameter = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		_ = json.NewEncoder(w).Encode(generateContentResponse{
			ModelVersion: "gemini-2.0-flash-lite-001",
			Candidates: []geminiCandidate{{
				Content:      geminiContent{Role: "model", Parts: []geminiPart{{Text: `{"title": `}, {Text: `"Hi"}`}}},
				FinishReason: "STOP",
			}},
			UsageMetadata: &usageMetadata{PromptTokenCount: 5, CandidatesTokenCount: 7, TotalTokenCount: 12},
		})
	}))
	defer server.Close()

	resp, err := newTestProvider(server.URL).GenerateContent(context.Background(), contentRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Content != `{"title": "Hi"}` {
		t.Errorf("multi-part content not joined, got %q", resp.Content)
	}
	if resp.FinishReason != "stop" {
		t.Errorf("finish reason = %q, want lowercase stop", resp.FinishReason)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 12 {
		t.Errorf("usage not mapped: %+v", resp.Usage)
	}

	if captured.SystemInstruction == nil {
		t.Error("system instruction not forwarded")
	}
	if captured.GenerationConfig == nil || captured.GenerationConfig.MaxOutputTokens != 2000 {
		t.Errorf("generation config not forwarded: %+v", captured.GenerationConfig)
	}
}

// TestGenerateContent_JSONMimeType verifies that a structured-output request
// sets the JSON response mime type.
func TestGenerateContent_JSONMimeType(t *testing.T) {
	var captured generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(generateContentResponse{
			Candidates: []geminiCandidate{{Content: geminiContent{Parts: []geminiPart{{Text: "{}"}}}}},
		})
	}))
	defer server.Close()

	req := contentRequest()
	req.ResponseFormat = &ai.ResponseFormat{Type: "json_object"}

	if _, err := newTestProvider(server.URL).GenerateContent(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.GenerationConfig.ResponseMimeType != "application/json" {
		t.Errorf("mime type = %q", captured.GenerationConfig.ResponseMimeType)
	}
}

// TestGenerateContent_NoAPIKey verifies that a missing key is a rejection.
func TestGenerateContent_NoAPIKey(t *testing.T) {
	p := New().WithAPIKey("").WithBaseURL("http://127.0.0.1:0")

	_, err := p.GenerateContent(context.Background(), contentRequest())
	if !errors.Is(err, ai.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

// TestGenerateContent_ErrorClassification verifies HTTP failure mapping.
func TestGenerateContent_ErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusServiceUnavailable, ai.ErrUnavailable},
		{http.StatusRequestTimeout, ai.ErrTimeout},
		{http.StatusForbidden, ai.ErrRejected},
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

// TestGenerateContent_NoCandidates verifies that an empty candidate list is a
// rejection.
func TestGenerateContent_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(generateContentResponse{})
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).GenerateContent(context.Background(), contentRequest())
	if !errors.Is(err, ai.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}
