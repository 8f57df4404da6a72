package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/leofalp/deckgen/internal/utils"
	"github.com/leofalp/deckgen/providers/ai"
	"github.com/leofalp/deckgen/providers/observability"
)

const (
	// ProviderName is the provenance identifier recorded for OpenAI content.
	ProviderName = "openai"

	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
	defaultModel            = "gpt-4o-mini"
)

// OpenAIProvider implements the ai.Provider interface for the OpenAI API.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new OpenAI provider instance with default values from environment.
// Environment variables:
//   - OPENAI_API_KEY: API key for authentication
//   - OPENAI_API_BASE_URL: Base URL for API (optional, defaults to OpenAI's API)
func New() *OpenAIProvider {
	apiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Ensure OpenAIProvider implements ai.Provider at compile time.
var _ ai.Provider = (*OpenAIProvider)(nil)

// Name implements the ai.Provider interface.
func (p *OpenAIProvider) Name() string { return ProviderName }

// WithAPIKey sets the API key for the provider.
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// GenerateContent implements the ai.Provider interface. It sends a chat
// completions request and returns the first choice's content. Failures are
// classified against the ai error sentinels so the orchestrator can decide
// between retry and fallthrough.
func (p *OpenAIProvider) GenerateContent(ctx context.Context, request ai.ContentRequest) (*ai.ContentResponse, error) {
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

	body := chatCompletionsRequest{
		Model:          model,
		Temperature:    request.Temperature,
		MaxTokens:      request.MaxTokens,
		ResponseFormat: convertResponseFormat(request.ResponseFormat),
	}
	if request.SystemPrompt != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: request.SystemPrompt})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: buildUserPrompt(request)})

	url := p.baseURL + chatCompletionsEndpoint
	_, response, err := utils.DoPostSync[chatCompletionsResponse](ctx, p.client, url, p.apiKey, body)
	if err != nil {
		return nil, ai.ClassifyError(ProviderName, err)
	}

	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: %s: response contains no choices", ai.ErrRejected, ProviderName)
	}

	choice := response.Choices[0]
	result := &ai.ContentResponse{
		Content:      choice.Message.Content,
		Model:        response.Model,
		FinishReason: choice.FinishReason,
	}
	if response.Usage != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		}
	}
	return result, nil
}

// convertResponseFormat maps the engine's structured-output contract onto the
// chat completions response_format field.
func convertResponseFormat(format *ai.ResponseFormat) *chatResponseFormat {
	if format == nil {
		return nil
	}
	if format.OutputSchema != nil {
		return &chatResponseFormat{
			Type: "json_schema",
			JSONSchema: &chatJSONSchema{
				Name:   "slide_content",
				Strict: format.Strict,
				Schema: format.OutputSchema,
			},
		}
	}
	if format.Type != "" && format.Type != "text" {
		return &chatResponseFormat{Type: format.Type}
	}
	return nil
}

// buildUserPrompt appends style hints to the prepared prompt. OpenAI has no
// dedicated style channel, so hints travel as trailing guidance lines.
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
