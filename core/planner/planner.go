package planner

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/leofalp/deckgen/core/deck"
)

// Precondition violations. These indicate a programming error in the caller,
// not a runtime condition: the orchestrator guarantees a consistent content
// set and request validation guarantees a known theme before Plan is reached.
var (
	ErrInconsistentContent = errors.New("deckgen: content set inconsistent with request")
	ErrUnknownTheme        = errors.New("deckgen: unknown theme")
)

// twoColumnMaxPoints is the largest number of discrete points that can be
// split across a two-column layout without overflowing it.
const twoColumnMaxPoints = 5

// Plan transforms a content set into a renderer-ready slide plan. It is a
// pure function: same content, request, and catalog always produce the same
// plan, and no I/O happens here.
//
// Layout resolution per slot: slot 0 is the deck's title slide; elsewhere the
// block's own layout hint wins when compatible with its content shape, then
// the request's layout preference in order, then a shape heuristic (paired
// columns, enumerable points, image material, plain paragraph, in that
// order). Styling layers theme defaults first and request overrides on top;
// an override replaces its whole attribute group, never individual fields.
//
// A nil catalog selects [DefaultCatalog].
func Plan(set deck.ContentSet, request deck.GenerationRequest, catalog *Catalog) (*deck.SlidePlan, error) {
	if err := set.Validate(request.SlideCount); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInconsistentContent, err)
	}

	if catalog == nil {
		catalog = DefaultCatalog()
	}
	style, ok := catalog.Style(request.Theme)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, request.Theme)
	}
	if request.Colors != nil {
		style.Colors = *request.Colors
	}
	if request.Fonts != nil {
		style.Fonts = *request.Fonts
	}

	plan := &deck.SlidePlan{
		Topic:  set.Topic,
		Theme:  request.Theme,
		Style:  style,
		Slides: make([]deck.Slide, 0, len(set.Blocks)+1),
	}

	for i, block := range set.Blocks {
		layout := resolveLayout(i, block, request.LayoutPreference)
		plan.Slides = append(plan.Slides, buildSlide(layout, block, request.IncludeImageSuggestions))
	}

	if request.IncludeCitations {
		plan.Slides = append(plan.Slides, referencesSlide(set))
	}

	return plan, nil
}

// resolveLayout picks the concrete layout for one slot.
func resolveLayout(slot int, block deck.ContentBlock, preference []deck.Layout) deck.Layout {
	// The deck always opens with a title slide.
	if slot == 0 {
		return deck.LayoutTitle
	}

	if block.Layout != "" && compatible(block.Layout, block) {
		return block.Layout
	}

	if len(preference) > 0 {
		// Preferences cycle across content slots, so a short preference
		// list still shapes a long deck; incompatible entries are skipped
		// in preference order.
		start := (slot - 1) % len(preference)
		for offset := range preference {
			candidate := preference[(start+offset)%len(preference)]
			if candidate != deck.LayoutTitle && compatible(candidate, block) {
				return candidate
			}
		}
	}

	return shapeHeuristic(block)
}

// compatible reports whether the block's content shape can fill the layout.
func compatible(layout deck.Layout, block deck.ContentBlock) bool {
	switch layout {
	case deck.LayoutTitle:
		return block.Title != "" || block.Body != ""
	case deck.LayoutBulletPoints:
		return len(block.BulletPoints) > 0 || block.Body != ""
	case deck.LayoutTwoColumn:
		if block.LeftColumn != "" && block.RightColumn != "" {
			return true
		}
		// Discrete points can be split across columns, up to the point
		// where either column would overflow.
		return len(block.BulletPoints) >= 2 && len(block.BulletPoints) <= twoColumnMaxPoints
	case deck.LayoutContentWithImage:
		return block.Body != "" || block.ImagePrompt != ""
	}
	return false
}

// shapeHeuristic chooses a layout from content shape alone: paired concepts
// become two columns, enumerable items a bullet list, image material a
// content-with-image slide, and a single paragraph a title/content slide.
func shapeHeuristic(block deck.ContentBlock) deck.Layout {
	switch {
	case block.LeftColumn != "" && block.RightColumn != "":
		return deck.LayoutTwoColumn
	case len(block.BulletPoints) > 0:
		return deck.LayoutBulletPoints
	case block.ImagePrompt != "":
		return deck.LayoutContentWithImage
	default:
		return deck.LayoutTitle
	}
}

// buildSlide resolves one block against its concrete layout, reshaping
// content where the layout demands it (e.g. splitting points into columns).
func buildSlide(layout deck.Layout, block deck.ContentBlock, keepImages bool) deck.Slide {
	slide := deck.Slide{
		Layout: layout,
		Title:  block.Title,
	}

	switch layout {
	case deck.LayoutTitle:
		slide.Body = block.Body
	case deck.LayoutBulletPoints:
		slide.BulletPoints = block.BulletPoints
		if len(slide.BulletPoints) == 0 {
			slide.Body = block.Body
		}
	case deck.LayoutTwoColumn:
		if block.LeftColumn != "" && block.RightColumn != "" {
			slide.LeftColumn = block.LeftColumn
			slide.RightColumn = block.RightColumn
		} else {
			half := (len(block.BulletPoints) + 1) / 2
			slide.LeftColumn = joinPoints(block.BulletPoints[:half])
			slide.RightColumn = joinPoints(block.BulletPoints[half:])
		}
	case deck.LayoutContentWithImage:
		slide.Body = block.Body
		if keepImages {
			slide.ImagePrompt = block.ImagePrompt
		}
	}

	return slide
}

func joinPoints(points []string) string {
	if len(points) == 0 {
		return ""
	}
	return "• " + strings.Join(points, "\n• ")
}

// referencesSlide synthesizes the closing citations slide from the
// provenance recorded on each block.
func referencesSlide(set deck.ContentSet) deck.Slide {
	slots := map[deck.Provenance][]int{}
	for i, block := range set.Blocks {
		slots[block.Provenance] = append(slots[block.Provenance], i+1)
	}

	provenances := make([]deck.Provenance, 0, len(slots))
	for provenance := range slots {
		provenances = append(provenances, provenance)
	}
	sort.Slice(provenances, func(i, j int) bool { return provenances[i] < provenances[j] })

	points := make([]string, 0, len(provenances)+3)
	for _, provenance := range provenances {
		points = append(points, fmt.Sprintf("Slides %s: %s", formatSlots(slots[provenance]), describeProvenance(provenance)))
	}
	points = append(points,
		"Research and content generated using AI technology",
		"For educational and demonstration purposes",
		"Please verify all information before use in professional settings",
	)

	return deck.Slide{
		Layout:       deck.LayoutBulletPoints,
		Title:        "References & Citations",
		BulletPoints: points,
	}
}

func describeProvenance(provenance deck.Provenance) string {
	switch provenance {
	case deck.ProvenanceUserSupplied:
		return "content supplied by the requester"
	case deck.ProvenanceTemplateFallback:
		return "content from the built-in template library"
	default:
		return fmt.Sprintf("content generated by %s", string(provenance))
	}
}

func formatSlots(slots []int) string {
	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = strconv.Itoa(slot)
	}
	return strings.Join(parts, ", ")
}
