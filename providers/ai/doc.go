// Package ai defines the provider capability for slide-content generation and
// its request/response models. Concrete backends live in subpackages:
// openai (primary hosted LLM), gemini (secondary hosted LLM), and template
// (the deterministic fallback, which never fails for valid input).
package ai
