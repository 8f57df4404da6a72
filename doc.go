// Package deckgen generates presentation documents from a topic and manages
// their storage lifecycle.
//
// The Engine is the facade over the whole pipeline. One SubmitGeneration call
// runs content generation across a fallback chain of AI providers, resolves
// layouts and theming into a slide plan, renders the plan into a document, and
// stores it as a downloadable artifact with a bounded retention window:
//
//	engine, err := deckgen.New(deckgen.Config{
//	    Providers: []ai.Provider{openai.New(), gemini.New()},
//	    Logger:    slog.Default(),
//	})
//	if err != nil { ... }
//
//	go engine.RunSweeper(ctx)
//
//	artifact, err := engine.SubmitGeneration(ctx, deck.GenerationRequest{
//	    Topic:      "AI in Healthcare",
//	    SlideCount: 5,
//	    Theme:      deck.ThemeModern,
//	})
//
// Generation is total for valid requests: the deterministic template provider
// terminates every chain, so a deck is produced even when all AI providers
// are down. Artifacts expire after the configured retention and are lazily
// rejected on fetch; the background sweeper reclaims their space.
//
// Subpackages hold the pipeline stages: core/orchestrator (provider chain and
// per-slot concurrency), core/planner (layout and theme resolution),
// core/sweeper (space reclamation), providers/ai (content providers),
// providers/render (document formats), and providers/storage (artifact
// stores).
package deckgen
