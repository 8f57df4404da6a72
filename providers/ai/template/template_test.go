package template

import (
	"context"
	"errors"
	"testing"

	"github.com/leofalp/deckgen/core/deck"
	"github.com/leofalp/deckgen/core/parse"
	"github.com/leofalp/deckgen/providers/ai"
)

func slotRequest(topic string, index, count int) ai.ContentRequest {
	return ai.ContentRequest{
		Slot: ai.Slot{Topic: topic, Index: index, Count: count},
	}
}

// TestGenerateContent_TitleSlot verifies that slot 0 always yields a title
// slide naming the topic.
func TestGenerateContent_TitleSlot(t *testing.T) {
	p := New()

	resp, err := p.GenerateContent(context.Background(), slotRequest("Quantum Gardening", 0, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	block, err := parse.Block(resp.Content)
	if err != nil {
		t.Fatalf("template output must parse: %v", err)
	}

	if block.Layout != deck.LayoutTitle {
		t.Errorf("layout = %q, want %q", block.Layout, deck.LayoutTitle)
	}
	if block.Title != "Quantum Gardening - Comprehensive Overview" {
		t.Errorf("unexpected title %q", block.Title)
	}
}

// TestGenerateContent_OutputParsesForEverySlot verifies the totality
// guarantee across a full deck: every slot yields parseable, non-empty
// content.
func TestGenerateContent_OutputParsesForEverySlot(t *testing.T) {
	p := New()
	const count = 8

	for slot := 0; slot < count; slot++ {
		resp, err := p.GenerateContent(context.Background(), slotRequest("Underwater Basket Weaving", slot, count))
		if err != nil {
			t.Fatalf("slot %d: unexpected error: %v", slot, err)
		}

		block, err := parse.Block(resp.Content)
		if err != nil {
			t.Fatalf("slot %d: output must parse: %v", slot, err)
		}
		if block.Empty() {
			t.Errorf("slot %d: block is empty", slot)
		}
	}
}

// TestGenerateContent_Deterministic verifies that the same slot yields the
// same content on repeat calls.
func TestGenerateContent_Deterministic(t *testing.T) {
	p := New()
	req := slotRequest("Cloud Computing", 2, 5)

	first, err := p.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Content != second.Content {
		t.Error("same slot should produce identical content")
	}
}

// TestGenerateContent_CuratedTopic verifies that recognized topics draw from
// the curated library with the topic substituted into titles.
func TestGenerateContent_CuratedTopic(t *testing.T) {
	p := New()

	resp, err := p.GenerateContent(context.Background(), slotRequest("Artificial Intelligence in Medicine", 1, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	block, err := parse.Block(resp.Content)
	if err != nil {
		t.Fatalf("output must parse: %v", err)
	}

	if block.Title != "Understanding Artificial Intelligence in Medicine" {
		t.Errorf("curated title not substituted, got %q", block.Title)
	}
	if len(block.BulletPoints) == 0 {
		t.Error("curated AI slide should carry bullet points")
	}
}

// TestGenerateContent_HonoursLayoutHint verifies that generic scaffolding
// follows the slot's layout hint when one is given.
func TestGenerateContent_HonoursLayoutHint(t *testing.T) {
	p := New()
	req := slotRequest("Competitive Chess Openings", 1, 4)
	req.Slot.Layout = string(deck.LayoutTwoColumn)

	resp, err := p.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	block, err := parse.Block(resp.Content)
	if err != nil {
		t.Fatalf("output must parse: %v", err)
	}

	if block.Layout != deck.LayoutTwoColumn {
		t.Errorf("layout = %q, want %q", block.Layout, deck.LayoutTwoColumn)
	}
	if block.LeftColumn == "" || block.RightColumn == "" {
		t.Error("two-column block should fill both columns")
	}
}

// TestGenerateContent_RejectsMissingSlot verifies that a request without slot
// information is the one rejection the provider has.
func TestGenerateContent_RejectsMissingSlot(t *testing.T) {
	p := New()

	_, err := p.GenerateContent(context.Background(), ai.ContentRequest{Prompt: "whatever"})
	if !errors.Is(err, ai.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

// TestGenerateContent_RespectsCancellation verifies that a canceled context
// stops generation.
func TestGenerateContent_RespectsCancellation(t *testing.T) {
	p := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GenerateContent(ctx, slotRequest("x", 1, 2))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
