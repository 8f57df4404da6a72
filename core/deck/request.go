package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Bounds enforced on incoming generation requests. They match the limits the
// engine has always advertised: short topics and decks small enough to
// generate within one request lifetime.
const (
	MaxTopicLength = 200
	MinSlideCount  = 1
	MaxSlideCount  = 20
)

// ErrInvalidInput is returned when a request is rejected before any work
// begins. It always wraps a description of the offending field, so callers can
// both dispatch on the class (errors.Is) and surface the detail.
var ErrInvalidInput = errors.New("deckgen: invalid input")

// GenerationRequest describes one presentation to generate. It is immutable
// once accepted: Validate is called exactly once at the caller boundary and
// nothing downstream mutates the value.
type GenerationRequest struct {
	// Topic is the subject of the presentation. Required, at most
	// MaxTopicLength characters after trimming.
	Topic string `json:"topic"`

	// SlideCount is the number of slides to produce, within
	// [MinSlideCount, MaxSlideCount].
	SlideCount int `json:"num_slides"`

	// LayoutPreference is an ordered list of preferred layouts. It may be
	// empty; the planner then chooses layouts by content shape. Preferred
	// layouts are honoured only when compatible with a block's content.
	LayoutPreference []Layout `json:"layout_preference,omitempty"`

	// Theme names the visual theme. Must be a built-in theme or one known
	// to the planner catalog in use.
	Theme Theme `json:"theme"`

	// Colors optionally replaces the theme's colour scheme wholesale.
	// Partial schemes are rejected; layering never merges individual fields.
	Colors *ColorScheme `json:"color_scheme,omitempty"`

	// Fonts optionally replaces the theme's font settings wholesale.
	Fonts *FontSettings `json:"font_settings,omitempty"`

	// CustomContent supplies pre-written content for leading slide slots.
	// Slot i uses CustomContent[i] when that block is non-empty, bypassing
	// provider generation for that slot. Its length may not exceed SlideCount.
	CustomContent []ContentBlock `json:"custom_content,omitempty"`

	// IncludeCitations appends a synthesized references slide derived from
	// provider provenance.
	IncludeCitations bool `json:"include_citations"`

	// IncludeImageSuggestions keeps image placeholder descriptions on
	// blocks; when false they are stripped during planning.
	IncludeImageSuggestions bool `json:"include_image_suggestions"`
}

// Validate rejects malformed requests with [ErrInvalidInput] before any
// provider is invoked. A nil error guarantees the orchestrator's totality:
// with the deterministic fallback configured, a valid request always yields a
// full content set.
func (r *GenerationRequest) Validate() error {
	topic := strings.TrimSpace(r.Topic)
	if topic == "" {
		return fmt.Errorf("%w: topic must not be empty", ErrInvalidInput)
	}
	if len(topic) > MaxTopicLength {
		return fmt.Errorf("%w: topic exceeds %d characters", ErrInvalidInput, MaxTopicLength)
	}

	if r.SlideCount < MinSlideCount || r.SlideCount > MaxSlideCount {
		return fmt.Errorf("%w: slide count %d outside [%d, %d]", ErrInvalidInput, r.SlideCount, MinSlideCount, MaxSlideCount)
	}

	for _, layout := range r.LayoutPreference {
		if !layout.Valid() {
			return fmt.Errorf("%w: unknown layout %q", ErrInvalidInput, layout)
		}
	}

	if r.Theme == "" {
		return fmt.Errorf("%w: theme must be set", ErrInvalidInput)
	}

	if r.Colors != nil && !r.Colors.Complete() {
		return fmt.Errorf("%w: color scheme override must specify all four colors", ErrInvalidInput)
	}
	for _, hex := range r.colorValues() {
		if !validHexColor(hex) {
			return fmt.Errorf("%w: malformed color %q", ErrInvalidInput, hex)
		}
	}

	if r.Fonts != nil && !r.Fonts.Complete() {
		return fmt.Errorf("%w: font settings override must specify all font attributes", ErrInvalidInput)
	}

	if len(r.CustomContent) > r.SlideCount {
		return fmt.Errorf("%w: %d custom content blocks for %d slides", ErrInvalidInput, len(r.CustomContent), r.SlideCount)
	}
	for i, block := range r.CustomContent {
		if block.Layout != "" && !block.Layout.Valid() {
			return fmt.Errorf("%w: custom content slot %d has unknown layout %q", ErrInvalidInput, i, block.Layout)
		}
	}

	return nil
}

func (r *GenerationRequest) colorValues() []string {
	if r.Colors == nil {
		return nil
	}
	return []string{r.Colors.Primary, r.Colors.Secondary, r.Colors.Background, r.Colors.Text}
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
