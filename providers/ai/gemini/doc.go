// Package gemini implements the ai.Provider capability against Google's
// Gemini generateContent API. It is typically configured as the secondary
// provider in the orchestrator's fallback chain.
package gemini
