package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/leofalp/deckgen/core/deck"
	"github.com/leofalp/deckgen/core/parse"
	"github.com/leofalp/deckgen/providers/ai"
	"github.com/leofalp/deckgen/providers/observability"
)

// ErrNoProviders is returned by New when the provider chain is empty.
var ErrNoProviders = errors.New("deckgen: no providers configured")

// ErrGenerationFailed is returned by Generate when at least one slide slot
// could not be filled by any provider in the chain. It wraps the last provider
// error for the failing slot, so callers can unwrap either.
//
// With a deterministic terminal provider in the chain this error is
// unreachable for valid requests.
var ErrGenerationFailed = errors.New("deckgen: content generation failed")

// Config holds the tuning parameters for the orchestrator. Zero values are
// replaced with the defaults documented on each field when New is called.
type Config struct {
	// MaxConcurrentSlots bounds how many slide slots are generated in
	// parallel. Default: 4.
	MaxConcurrentSlots int

	// MaxTokens is the per-slot token budget passed to providers.
	// Default: 2000.
	MaxTokens int

	// Temperature is the sampling temperature passed to providers.
	// Default: 0.7.
	Temperature float32

	// Model overrides the provider default model. Empty keeps each
	// provider's own default.
	Model string

	// Style is soft guidance threaded into every prompt.
	Style ai.StyleHints

	// Middlewares is the attempt chain applied to every provider,
	// outermost-first. An empty chain performs single direct attempts with
	// no per-attempt deadline; production configurations should include at
	// least the timeout and retry middleware.
	Middlewares []Middleware

	// Observer enables tracing, metrics, and logging. Nil disables
	// observability with zero overhead.
	Observer observability.Provider
}

// applyConfigDefaults fills in zero-valued fields in config with sensible defaults.
func applyConfigDefaults(config *Config) {
	if config.MaxConcurrentSlots == 0 {
		config.MaxConcurrentSlots = 4
	}

	if config.MaxTokens == 0 {
		config.MaxTokens = 2000
	}

	if config.Temperature == 0 {
		config.Temperature = 0.7
	}
}

// chainEntry pairs a provider's name with its fully wrapped attempt function.
type chainEntry struct {
	name    string
	attempt GenerateFunc
}

// Orchestrator turns one validated generation request into a complete content
// set, one block per slide slot. Providers are tried strictly in chain order
// for each slot; a slot falls through to the next provider when the current
// one fails or returns content that cannot be parsed into a usable block.
//
// Orchestrator is safe for concurrent use: it is immutable after New.
type Orchestrator struct {
	config Config
	chain  []chainEntry
	schema *jsonschema.Schema
}

// New builds an orchestrator over the given provider chain. Order matters:
// providers[0] is tried first for every slot, and the last provider should be
// a deterministic generator (see the template provider) when callers need the
// guarantee that every valid request produces a full deck.
func New(config Config, providers ...ai.Provider) (*Orchestrator, error) {
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}

	applyConfigDefaults(&config)

	chain := make([]chainEntry, 0, len(providers))
	for _, provider := range providers {
		chain = append(chain, chainEntry{
			name:    provider.Name(),
			attempt: buildAttemptChain(provider, config.Middlewares),
		})
	}

	// Derive the structured-output contract once; providers that support
	// schema-constrained responses enforce it, the rest fall back to the
	// JSON instructions embedded in the prompt.
	schema, err := jsonschema.For[deck.ContentBlock](nil)
	if err != nil {
		return nil, fmt.Errorf("deckgen: building response schema: %w", err)
	}

	return &Orchestrator{config: config, chain: chain, schema: schema}, nil
}

// Generate produces one content block per requested slide slot and returns
// them assembled in slot order. Slots run concurrently up to
// Config.MaxConcurrentSlots; completion order never affects block order.
//
// Slots covered by a non-empty entry in request.CustomContent skip provider
// generation entirely and carry [deck.ProvenanceUserSupplied].
//
// Cancellation of ctx abandons all outstanding slots and returns ctx.Err().
// Any other failure is reported as [ErrGenerationFailed] wrapping the last
// provider error for the first slot that could not be filled.
func (o *Orchestrator) Generate(ctx context.Context, request deck.GenerationRequest) (deck.ContentSet, error) {
	if err := request.Validate(); err != nil {
		return deck.ContentSet{}, err
	}

	ctx, span := o.observeGenerateStart(ctx, request)
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	blocks := make([]deck.ContentBlock, request.SlideCount)
	sem := make(chan struct{}, o.config.MaxConcurrentSlots)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for slot := 0; slot < request.SlideCount; slot++ {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()

			// A slot failure cancels the internal context to abandon the
			// remaining slots; the recorded failure is the result, not the
			// cancellation it triggered.
			mu.Lock()
			err := firstErr
			mu.Unlock()
			if err == nil {
				err = ctx.Err()
			}

			o.observeGenerateFailed(ctx, span, err, time.Since(start))
			return deck.ContentSet{}, err
		}

		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			defer func() { <-sem }()

			block, err := o.fillSlot(ctx, request, slot)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
				return
			}

			blocks[slot] = block
		}(slot)
	}

	wg.Wait()

	if firstErr != nil {
		o.observeGenerateFailed(ctx, span, firstErr, time.Since(start))
		return deck.ContentSet{}, firstErr
	}

	set := deck.ContentSet{Topic: request.Topic, Blocks: blocks}
	o.observeGenerateCompleted(ctx, span, set, time.Since(start))
	return set, nil
}

// fillSlot produces the content block for one slide slot, trying the custom
// content short-circuit first and then each provider in chain order.
func (o *Orchestrator) fillSlot(ctx context.Context, request deck.GenerationRequest, slot int) (deck.ContentBlock, error) {
	if slot < len(request.CustomContent) && !request.CustomContent[slot].Empty() {
		block := request.CustomContent[slot]
		block.Provenance = deck.ProvenanceUserSupplied
		o.observeSlotFilled(ctx, slot, block.Provenance)
		return block, nil
	}

	layout := targetLayout(request, slot)
	contentRequest := ai.ContentRequest{
		Prompt:       buildSlotPrompt(request, slot, layout),
		SystemPrompt: systemPrompt,
		Model:        o.config.Model,
		MaxTokens:    o.config.MaxTokens,
		Temperature:  o.config.Temperature,
		Style:        o.config.Style,
		ResponseFormat: &ai.ResponseFormat{
			OutputSchema: o.schema,
			Type:         "json_object",
		},
		Slot: ai.Slot{
			Topic:  request.Topic,
			Index:  slot,
			Count:  request.SlideCount,
			Layout: string(layout),
		},
	}

	var lastErr error
	for _, entry := range o.chain {
		if ctx.Err() != nil {
			return deck.ContentBlock{}, ctx.Err()
		}

		response, err := entry.attempt(ctx, contentRequest)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return deck.ContentBlock{}, err
			}
			lastErr = err
			o.observeFallback(ctx, slot, entry.name, err)
			continue
		}

		block, err := parse.Block(sanitizeContent(response.Content))
		if err != nil {
			// Content the provider produced but we cannot use counts as a
			// provider failure for fallback purposes.
			lastErr = fmt.Errorf("%w: %s: %w", ai.ErrRejected, entry.name, err)
			o.observeFallback(ctx, slot, entry.name, lastErr)
			continue
		}

		block.Provenance = provenanceFor(entry.name)
		if block.Layout == "" {
			block.Layout = layout
		}

		o.observeSlotFilled(ctx, slot, block.Provenance)
		return block, nil
	}

	return deck.ContentBlock{}, fmt.Errorf("%w: slot %d: %w", ErrGenerationFailed, slot, lastErr)
}

// provenanceFor maps a provider chain name to the provenance recorded on
// blocks it produces.
func provenanceFor(name string) deck.Provenance {
	if name == string(deck.ProvenanceTemplateFallback) || name == "template" {
		return deck.ProvenanceTemplateFallback
	}
	return deck.Provenance(name)
}
