package deck

import (
	"fmt"
	"strings"
)

// Provenance records which source produced a content block. Provider-backed
// blocks carry the provider's name; the two reserved values below cover the
// non-provider paths.
type Provenance string

const (
	// ProvenanceUserSupplied marks a block the caller supplied directly,
	// bypassing generation for its slot.
	ProvenanceUserSupplied Provenance = "user-supplied"

	// ProvenanceTemplateFallback marks a block produced by the deterministic
	// template generator after every AI provider failed for the slot.
	ProvenanceTemplateFallback Provenance = "template-fallback"
)

// ContentBlock is the generated or user-supplied material for one slide,
// before layout resolution. Layout, when set, records the layout the block
// was written for; the planner treats it as a hint, not a command.
type ContentBlock struct {
	Title        string     `json:"title"`
	Body         string     `json:"content,omitempty"`
	BulletPoints []string   `json:"bullet_points,omitempty"`
	LeftColumn   string     `json:"left_column,omitempty"`
	RightColumn  string     `json:"right_column,omitempty"`
	ImagePrompt  string     `json:"image_placeholder,omitempty"`
	Layout       Layout     `json:"layout,omitempty"`
	Provenance   Provenance `json:"-"`
}

// Empty reports whether the block carries no usable content at all.
func (b ContentBlock) Empty() bool {
	if strings.TrimSpace(b.Title) != "" || strings.TrimSpace(b.Body) != "" {
		return false
	}
	if strings.TrimSpace(b.LeftColumn) != "" || strings.TrimSpace(b.RightColumn) != "" {
		return false
	}
	for _, point := range b.BulletPoints {
		if strings.TrimSpace(point) != "" {
			return false
		}
	}
	return strings.TrimSpace(b.ImagePrompt) == ""
}

// ContentSet is the ordered sequence of blocks for one deck, exactly one per
// requested slide slot, assembled in the original slot order regardless of
// the order generation completed in.
type ContentSet struct {
	Topic  string
	Blocks []ContentBlock
}

// Validate checks the set's internal consistency against the requested slide
// count. A failure here is a programming error in the producer, not a runtime
// condition; the planner treats it as a fatal precondition violation.
func (s ContentSet) Validate(expected int) error {
	if len(s.Blocks) != expected {
		return fmt.Errorf("content set has %d blocks, expected %d", len(s.Blocks), expected)
	}
	for i, block := range s.Blocks {
		if block.Empty() {
			return fmt.Errorf("content set block %d is empty", i)
		}
		if block.Provenance == "" {
			return fmt.Errorf("content set block %d has no provenance", i)
		}
	}
	return nil
}
