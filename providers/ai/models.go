package ai

import "github.com/google/jsonschema-go/jsonschema"

/*
	##### PROVIDER INPUT #####
*/

// ContentRequest represents one generation request for a single slide slot.
type ContentRequest struct {
	Prompt         string          `json:"prompt"`                    // Fully built user prompt for the slot
	SystemPrompt   string          `json:"system_prompt,omitempty"`   // Optional system framing (presentation-designer persona)
	Model          string          `json:"model,omitempty"`           // Model name or identifier; empty selects the provider default
	MaxTokens      int             `json:"max_tokens,omitempty"`      // Token budget for the response
	Temperature    float32         `json:"temperature,omitempty"`     // Sampling temperature [0..2]
	Style          StyleHints      `json:"style,omitempty"`           // Soft guidance threaded into the prompt by providers that support it
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"` // Optional structured-output contract
	Slot           Slot            `json:"slot"`                      // Structural description of the slide slot being generated
}

// Slot describes the slide slot a request targets. Hosted providers work from
// the pre-built Prompt and ignore it; structural generators (the template
// fallback) build content from the slot directly.
type Slot struct {
	Topic  string `json:"topic"`            // Presentation topic
	Index  int    `json:"index"`            // Zero-based slot position
	Count  int    `json:"count"`            // Total slides in deck
	Layout string `json:"layout,omitempty"` // Target layout hint for the slot
}

// StyleHints carry soft, provider-interpretable guidance about the desired
// register of the generated text.
type StyleHints struct {
	Tone     string `json:"tone,omitempty"`     // e.g. "professional", "casual"
	Audience string `json:"audience,omitempty"` // e.g. "executives", "students"
	Language string `json:"language,omitempty"` // BCP 47 tag; empty means English
}

// ResponseFormat requests structured output from providers that support it.
type ResponseFormat struct {
	OutputSchema *jsonschema.Schema `json:"output_schema,omitempty"` // Schema the response must conform to. Implementation varies by provider.
	Strict       bool               `json:"strict,omitempty"`        // If true, the model must strictly adhere to the schema, if possible.
	Type         string             `json:"type,omitempty"`          // Format hint "text|json_object|json_schema"; forced to json_object when a schema is set
}

/*
	##### PROVIDER OUTPUT #####
*/

// Usage reports the token accounting for one provider call, when the backend
// exposes it. The template provider always returns nil usage.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ContentResponse represents the completed response for one slot.
type ContentResponse struct {
	Content      string `json:"content"`                 // Raw text; typically a JSON object describing the slide
	Model        string `json:"model,omitempty"`         // Model that actually served the request
	FinishReason string `json:"finish_reason,omitempty"` // Provider-specific terminal reason
	Usage        *Usage `json:"usage,omitempty"`
}
