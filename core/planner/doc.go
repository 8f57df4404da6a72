// Package planner turns a generated content set into the renderer-ready
// slide plan: concrete layout per slide, theme styling with request overrides
// layered on top, and an optional synthesized references slide. Planning is
// pure (no I/O, no clock, no randomness), so a plan is always rebuildable
// from the same inputs.
package planner
