package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/deckgen/core/deck"
	"github.com/leofalp/deckgen/providers/render"
)

// RendererName identifies this renderer.
const RendererName = "markdown"

// Renderer serializes slide plans as a markdown document, one section per
// slide with a horizontal rule between slides. The style sheet is embedded as
// a front-matter comment so downstream converters can honour it.
type Renderer struct{}

// Compile-time check that Renderer satisfies the renderer contract.
var _ render.Renderer = (*Renderer)(nil)

// New returns a markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns "markdown".
func (r *Renderer) Name() string { return RendererName }

// FileExtension returns ".md".
func (r *Renderer) FileExtension() string { return ".md" }

// Render serializes plan into a markdown document.
func (r *Renderer) Render(ctx context.Context, plan *deck.SlidePlan) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if plan == nil || len(plan.Slides) == 0 {
		return nil, fmt.Errorf("%w: empty slide plan", render.ErrRender)
	}

	var b strings.Builder

	writeHeader(&b, plan)

	for i, slide := range plan.Slides {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		if err := writeSlide(&b, slide); err != nil {
			return nil, fmt.Errorf("%w: slide %d: %w", render.ErrRender, i, err)
		}
	}

	return []byte(b.String()), nil
}

// writeHeader emits the document title and the resolved style sheet as an
// HTML comment block, keeping the document renderable by any markdown viewer.
func writeHeader(b *strings.Builder, plan *deck.SlidePlan) {
	fmt.Fprintf(b, "<!--\n")
	fmt.Fprintf(b, "  theme: %s\n", plan.Theme)
	fmt.Fprintf(b, "  colors: primary=%s secondary=%s background=%s text=%s\n",
		plan.Style.Colors.Primary, plan.Style.Colors.Secondary,
		plan.Style.Colors.Background, plan.Style.Colors.Text)
	fmt.Fprintf(b, "  fonts: title=%s/%d body=%s/%d\n",
		plan.Style.Fonts.TitleFont, plan.Style.Fonts.TitleSize,
		plan.Style.Fonts.BodyFont, plan.Style.Fonts.BodySize)
	fmt.Fprintf(b, "-->\n\n")
}

// writeSlide emits one slide section according to its layout.
func writeSlide(b *strings.Builder, slide deck.Slide) error {
	switch slide.Layout {
	case deck.LayoutTitle:
		fmt.Fprintf(b, "# %s\n", slide.Title)
		if slide.Body != "" {
			fmt.Fprintf(b, "\n%s\n", slide.Body)
		}

	case deck.LayoutBulletPoints:
		fmt.Fprintf(b, "## %s\n\n", slide.Title)
		if len(slide.BulletPoints) == 0 && slide.Body != "" {
			// The planner falls back to body text when a block targeted at
			// this layout carries no discrete points.
			fmt.Fprintf(b, "%s\n", slide.Body)
		}
		writeBullets(b, slide.BulletPoints)

	case deck.LayoutTwoColumn:
		fmt.Fprintf(b, "## %s\n\n", slide.Title)
		fmt.Fprintf(b, "### Left\n\n%s\n\n", slide.LeftColumn)
		fmt.Fprintf(b, "### Right\n\n%s\n", slide.RightColumn)

	case deck.LayoutContentWithImage:
		fmt.Fprintf(b, "## %s\n\n", slide.Title)
		if slide.Body != "" {
			fmt.Fprintf(b, "%s\n\n", slide.Body)
		}
		writeBullets(b, slide.BulletPoints)
		if slide.ImagePrompt != "" {
			fmt.Fprintf(b, "\n![%s](image-placeholder)\n", slide.ImagePrompt)
		}

	default:
		return fmt.Errorf("unknown layout %q", slide.Layout)
	}

	return nil
}

func writeBullets(b *strings.Builder, points []string) {
	for _, point := range points {
		fmt.Fprintf(b, "- %s\n", point)
	}
}
