// Package layout breaks content across fixed-size pages.
//
// A page driver calls Layout with the page's constraints, then Paint, and
// repeats on the same node while HasMoreContent reports true. Nodes that
// can be continued on a later page implement Spanner and keep their
// progress in an owned State between calls.
//
// Two spanners are provided:
//
//   - SpanningContainer wraps a single child taller than a page. The child
//     is measured once at unconstrained height, painted in full on every
//     page, and clipped so that only the current slice shows.
//   - FlowGroup stacks a list of children top to bottom, starting a new
//     page whenever the next child does not fit, and wraps a child that is
//     taller than a whole page in a SpanningContainer.
//
// Column is the plain vertical stack for content that must stay together.
package layout
