package render

import (
	"context"
	"errors"

	"github.com/leofalp/deckgen/core/deck"
)

// ErrRender is returned when a slide plan cannot be serialized into the
// renderer's document format. It always wraps a description of the failure.
var ErrRender = errors.New("deckgen: render failed")

// Renderer serializes a resolved slide plan into a document blob. Renderers
// are pure: the same plan always yields an equivalent document, and rendering
// never mutates the plan.
type Renderer interface {
	// Name identifies the renderer, e.g. "markdown".
	Name() string

	// FileExtension returns the extension for documents this renderer
	// produces, including the leading dot, e.g. ".md".
	FileExtension() string

	// Render serializes plan into a document. Failures wrap [ErrRender].
	Render(ctx context.Context, plan *deck.SlidePlan) ([]byte, error)
}
