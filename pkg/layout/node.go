package layout

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"folio/pkg/geom"
	"folio/pkg/paint"
)

// Node is a sizeable, paintable piece of content.
//
// Measure reports the size the node wants under c without changing any
// state; the height may exceed c.MaxHeight, in which case the caller
// decides what to do with the overflow. Layout performs one layout pass
// and fixes the size Paint will use; for a Spanner it also advances the
// pagination state. Paint draws the node at the surface's local origin and
// must not mutate the node.
//
// Measurements must be stable: repeated calls with the same constraints
// return the same size for the lifetime of a document.
type Node interface {
	Measure(c geom.Constraints) geom.Size
	Layout(c geom.Constraints) (geom.Size, error)
	Paint(s paint.Surface)
}

// Spanner is a node that can continue on later pages.
type Spanner interface {
	Node
	// CanSpanPages reports whether the node may be split across pages.
	CanSpanPages() bool
	// HasMoreContent reports whether part of the node is still unrendered
	// after the last Layout.
	HasMoreContent() bool
	// SaveState returns an independent snapshot of the pagination state.
	SaveState() State
	// RestoreState rewinds the node to a snapshot taken by SaveState.
	RestoreState(State) error
}

// State is a node's pagination progress record.
type State interface {
	// Apply copies the values of other onto the receiver. It fails with
	// ErrStateMismatch when other belongs to a different kind of node.
	Apply(other State) error
	// Clone returns an independent copy.
	Clone() State
	// Equal reports value equality.
	Equal(other State) bool
	String() string
}

// AsSpanner returns n as a Spanner if it exposes the spanning capability.
func AsSpanner(n Node) (Spanner, bool) {
	sp, ok := n.(Spanner)
	if !ok || !sp.CanSpanPages() {
		return nil, false
	}
	return sp, true
}

// placement is a child laid out on the current page at a local box.
type placement struct {
	node Node
	box  geom.Rect
}

// stack positions placed boxes top to bottom with spacing between them,
// aligned across the available width, and returns the enclosing box.
func stack(placed []placement, spacing float64, align Align, c geom.Constraints) geom.Rect {
	var width, height float64
	for i, p := range placed {
		width = math.Max(width, p.box.Width)
		if i > 0 {
			height += spacing
		}
		height += p.box.Height
	}

	crossAxis := c.MaxWidth
	if !c.HasBoundedWidth() {
		crossAxis = width
	}

	top := 0.0
	for i := range placed {
		p := &placed[i]
		if i > 0 {
			top += spacing
		}
		p.box.X = align.offset(p.box.Width, crossAxis)
		p.box.Y = height - top - p.box.Height
		top += p.box.Height
	}
	return geom.Rect{Width: width, Height: height}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
