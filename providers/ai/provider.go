package ai

import (
	"context"
	"net/http"
)

// Provider is the capability every content-generation backend must satisfy,
// whether it is a hosted LLM or the deterministic template generator. It
// covers the full lifecycle of a single request: authentication, endpoint
// configuration, dispatch, and response interpretation.
//
// Errors returned from GenerateContent are classified against the sentinels
// in errors.go ([ErrUnavailable], [ErrTimeout], [ErrRejected]) so the
// orchestrator can decide between retrying and falling through to the next
// provider in the chain.
type Provider interface {
	// Name returns the provider's stable identifier (e.g. "openai",
	// "gemini", "template"). It is recorded as block provenance.
	Name() string

	// GenerateContent sends a generation request and returns the completed
	// response. Returns an error if the provider call fails, the context is
	// cancelled, or the response cannot be decoded.
	GenerateContent(ctx context.Context, request ContentRequest) (*ContentResponse, error)

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}
