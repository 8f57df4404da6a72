package orchestrator

import (
	"fmt"
	"strings"

	"github.com/leofalp/deckgen/core/deck"
)

// systemPrompt frames every provider call. Providers without a system role
// fold it into the user prompt.
const systemPrompt = "You are a professional presentation designer. " +
	"Generate structured slide content as a single JSON object. " +
	"Respond with JSON only, no surrounding prose."

// defaultLayoutCycle is the layout rotation for body slides when the request
// carries no layout preference.
var defaultLayoutCycle = []deck.Layout{
	deck.LayoutBulletPoints,
	deck.LayoutTwoColumn,
	deck.LayoutContentWithImage,
}

// targetLayout picks the layout hint for one slot. Slot 0 is always the title
// slide; later slots cycle through the caller's layout preference when one is
// given, otherwise through the default rotation. The planner makes the final
// call; this hint only steers what the provider writes.
func targetLayout(request deck.GenerationRequest, slot int) deck.Layout {
	if slot == 0 {
		return deck.LayoutTitle
	}

	cycle := request.LayoutPreference
	if len(cycle) == 0 {
		cycle = defaultLayoutCycle
	}

	layout := cycle[(slot-1)%len(cycle)]
	if layout == deck.LayoutTitle {
		// Only the first slide is a title slide.
		return deck.LayoutBulletPoints
	}
	return layout
}

// buildSlotPrompt assembles the user prompt for one slide slot, embedding the
// JSON contract and per-layout guidance.
func buildSlotPrompt(request deck.GenerationRequest, slot int, layout deck.Layout) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create slide %d of %d for a presentation about %q.\n", slot+1, request.SlideCount, strings.TrimSpace(request.Topic))
	fmt.Fprintf(&b, "Target layout: %s.\n\n", layout)

	b.WriteString("Return a single JSON object with these fields:\n")
	b.WriteString(`{"title": "...", "layout": "` + string(layout) + `"`)

	switch layout {
	case deck.LayoutTitle:
		b.WriteString(`, "content": "a one-sentence subtitle"}`)
		b.WriteString("\n\nThe title should name the topic; the subtitle should preview the presentation.")
	case deck.LayoutTwoColumn:
		b.WriteString(`, "left_column": "...", "right_column": "..."}`)
		b.WriteString("\n\nEach column should carry a short contrasting or complementary point, 1-3 sentences.")
	case deck.LayoutContentWithImage:
		b.WriteString(`, "content": "...", "bullet_points": ["...", "..."]`)
		if request.IncludeImageSuggestions {
			b.WriteString(`, "image_placeholder": "a short description of a fitting image"`)
		}
		b.WriteString("}")
		b.WriteString("\n\nProvide 3-5 concise bullet points supporting the slide's main idea.")
	default: // bullet points
		b.WriteString(`, "bullet_points": ["...", "...", "..."]}`)
		b.WriteString("\n\nProvide 3-5 concise bullet points, each a complete professional statement.")
	}

	b.WriteString("\n\nGuidelines: use engaging, professional language appropriate for a business audience; avoid filler; do not repeat the slide number or topic verbatim in every field.")

	if slot > 0 {
		fmt.Fprintf(&b, " Keep the slide focused on one aspect of %q rather than summarising the whole topic.", strings.TrimSpace(request.Topic))
	}

	return b.String()
}
