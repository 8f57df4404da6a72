// Package render defines the document renderer contract.
//
// A Renderer is the last stage of the generation pipeline: it takes a fully
// resolved [deck.SlidePlan] and serializes it into the bytes that become the
// stored artifact. The markdown subpackage provides the built-in renderer;
// alternative formats implement [Renderer] and plug into the engine unchanged.
package render
