package gemini

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/leofalp/deckgen/internal/utils"
	"github.com/leofalp/deckgen/providers/ai"
	"github.com/leofalp/deckgen/providers/observability"
)

const (
	// ProviderName is the provenance identifier recorded for Gemini content.
	ProviderName = "gemini"

	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash-lite" // Most cost-effective model
)

// GeminiProvider implements the ai.Provider interface for Google's Gemini API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Gemini provider instance with default values from environment.
// Environment variables:
//   - GEMINI_API_KEY: API key for authentication
//   - GEMINI_API_BASE_URL: Base URL for API (optional, defaults to Google's API)
func New() *GeminiProvider {
	apiKey := os.Getenv("GEMINI_API_KEY")
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Ensure GeminiProvider implements ai.Provider at compile time.
var _ ai.Provider = (*GeminiProvider)(nil)

// Name implements the ai.Provider interface.
func (p *GeminiProvider) Name() string { return ProviderName }

// WithAPIKey sets the API key for the provider.
func (p *GeminiProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *GeminiProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// GenerateContent implements the ai.Provider interface. It sends a
// generateContent request and returns the first candidate's text. Failures
// are classified against the ai error sentinels.
func (p *GeminiProvider) GenerateContent(ctx context.Context, request ai.ContentRequest) (*ai.ContentResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: %s: no API key configured", ai.ErrRejected, ProviderName)
	}

	model := request.Model
	if model == "" {
		model = defaultModel
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventProviderRequestStart,
			observability.String(observability.AttrProviderName, ProviderName),
			observability.String(observability.AttrProviderEndpoint, p.baseURL),
			observability.String(observability.AttrProviderModel, model),
			observability.Int(observability.AttrProviderMaxTokens, request.MaxTokens),
		)
		defer span.AddEvent(observability.EventProviderRequestEnd,
			observability.String(observability.AttrProviderName, ProviderName),
		)
	}

	body := generateContentRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: buildUserPrompt(request)}},
		}},
		GenerationConfig: &generationConfig{
			Temperature:     request.Temperature,
			MaxOutputTokens: request.MaxTokens,
		},
	}
	if request.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: request.SystemPrompt}}}
	}
	// Gemini's schema dialect differs from JSON Schema, so only the mime
	// type is forwarded; the prompt carries the field contract.
	if request.ResponseFormat != nil && (request.ResponseFormat.OutputSchema != nil || request.ResponseFormat.Type == "json_object") {
		body.GenerationConfig.ResponseMimeType = "application/json"
	}

	// The API key travels as a query parameter, not an Authorization header.
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, model, url.QueryEscape(p.apiKey))
	_, response, err := utils.DoPostSync[generateContentResponse](ctx, p.client, endpoint, "", body)
	if err != nil {
		return nil, ai.ClassifyError(ProviderName, err)
	}

	text := firstCandidateText(response)
	if text == "" {
		return nil, fmt.Errorf("%w: %s: response contains no candidates", ai.ErrRejected, ProviderName)
	}

	result := &ai.ContentResponse{
		Content: text,
		Model:   response.ModelVersion,
	}
	if result.Model == "" {
		result.Model = model
	}
	if len(response.Candidates) > 0 {
		result.FinishReason = strings.ToLower(response.Candidates[0].FinishReason)
	}
	if response.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     response.UsageMetadata.PromptTokenCount,
			CompletionTokens: response.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      response.UsageMetadata.TotalTokenCount,
		}
	}
	return result, nil
}

func firstCandidateText(response *generateContentResponse) string {
	if len(response.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

func buildUserPrompt(request ai.ContentRequest) string {
	prompt := request.Prompt
	if request.Style.Tone != "" {
		prompt += fmt.Sprintf("\nTone: %s.", request.Style.Tone)
	}
	if request.Style.Audience != "" {
		prompt += fmt.Sprintf("\nAudience: %s.", request.Style.Audience)
	}
	if request.Style.Language != "" {
		prompt += fmt.Sprintf("\nWrite in language: %s.", request.Style.Language)
	}
	return prompt
}
