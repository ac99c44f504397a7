package layout

import (
	"math"

	"folio/pkg/geom"
	"folio/pkg/paint"
)

// Column stacks children top to bottom and never splits. It reports its
// full height even when that exceeds the constraints; a FlowGroup or the
// page driver decides whether to break it.
type Column struct {
	children []Node
	spacing  float64
	align    Align

	placed []placement
	box    geom.Rect
}

// NewColumn creates a column. Relevant options are WithSpacing and WithAlign.
func NewColumn(children []Node, opts ...Option) *Column {
	o := newOptions(opts)
	return &Column{children: children, spacing: o.spacing, align: o.align}
}

// Box returns the local box assigned by the last Layout.
func (col *Column) Box() geom.Rect { return col.box }

func (col *Column) Measure(c geom.Constraints) geom.Size {
	unbounded := c.Unbounded()
	var size geom.Size
	for i, child := range col.children {
		s := child.Measure(unbounded)
		if i > 0 {
			size.Height += col.spacing
		}
		size.Height += s.Height
		size.Width = math.Max(size.Width, s.Width)
	}
	return size
}

func (col *Column) Layout(c geom.Constraints) (geom.Size, error) {
	unbounded := c.Unbounded()
	col.placed = col.placed[:0]

	for _, child := range col.children {
		s, err := child.Layout(unbounded)
		if err != nil {
			return geom.Size{}, err
		}
		col.placed = append(col.placed, placement{node: child, box: geom.NewRect(s)})
	}

	col.box = stack(col.placed, col.spacing, col.align, c)
	return col.box.Size(), nil
}

func (col *Column) Paint(s paint.Surface) {
	for _, p := range col.placed {
		s.Push()
		s.Translate(p.box.X, p.box.Y)
		p.node.Paint(s)
		s.Pop()
	}
}
