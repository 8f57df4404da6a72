// Package openai implements the ai.Provider capability against the OpenAI
// chat completions API. It is typically configured as the primary provider in
// the orchestrator's fallback chain.
package openai
