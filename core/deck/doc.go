// Package deck defines the data model shared by the generation pipeline:
// the immutable [GenerationRequest] accepted at the caller boundary, the
// [ContentSet] produced by the orchestrator, and the renderer-ready
// [SlidePlan] produced by the planner.
//
// All types here are plain values with no I/O; validation lives next to the
// type it guards so every component downstream can rely on invariants having
// been checked exactly once, at the boundary.
package deck
