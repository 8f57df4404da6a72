package template

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/leofalp/deckgen/providers/ai"
	"github.com/leofalp/deckgen/providers/observability"
)

// ProviderName is the provenance identifier recorded for template content.
const ProviderName = "template"

// TemplateProvider is the deterministic last-resort content generator. It
// never calls out to the network and never fails for a well-formed request,
// which is what gives the orchestrator its totality guarantee: as long as the
// template provider terminates the chain, a valid request always produces a
// full deck.
//
// Content comes from a curated topic library for well-known subjects and from
// generic scaffolding otherwise. The same slot always yields the same block.
type TemplateProvider struct {
	library topicLibrary
}

// New creates a template provider backed by the built-in topic library.
func New() *TemplateProvider {
	return &TemplateProvider{library: builtinLibrary()}
}

// Ensure TemplateProvider implements ai.Provider at compile time.
var _ ai.Provider = (*TemplateProvider)(nil)

// Name implements the ai.Provider interface.
func (p *TemplateProvider) Name() string { return ProviderName }

// WithAPIKey is a no-op; the template provider needs no credentials.
func (p *TemplateProvider) WithAPIKey(string) ai.Provider { return p }

// WithBaseURL is a no-op; the template provider performs no I/O.
func (p *TemplateProvider) WithBaseURL(string) ai.Provider { return p }

// WithHttpClient is a no-op; the template provider performs no I/O.
func (p *TemplateProvider) WithHttpClient(*http.Client) ai.Provider { return p }

// GenerateContent implements the ai.Provider interface. The response content
// is a JSON slide object in the same shape hosted providers are prompted for,
// so template output flows through the exact same parsing path.
//
// The only error paths are context expiry and a request without slot
// information; neither occurs for requests built by the orchestrator.
func (p *TemplateProvider) GenerateContent(ctx context.Context, request ai.ContentRequest) (*ai.ContentResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if request.Slot.Topic == "" || request.Slot.Count <= 0 {
		return nil, fmt.Errorf("%w: %s: request carries no slot information", ai.ErrRejected, ProviderName)
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventProviderRequestStart,
			observability.String(observability.AttrProviderName, ProviderName),
			observability.Int(observability.AttrGenerationSlot, request.Slot.Index),
		)
	}

	block := p.library.blockFor(request.Slot)

	encoded, err := json.Marshal(block)
	if err != nil {
		// Unreachable for library content; kept for interface honesty.
		return nil, fmt.Errorf("%w: %s: encoding block: %w", ai.ErrRejected, ProviderName, err)
	}

	return &ai.ContentResponse{
		Content:      string(encoded),
		Model:        ProviderName,
		FinishReason: "stop",
	}, nil
}
