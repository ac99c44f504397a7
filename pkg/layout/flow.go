package layout

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"folio/pkg/geom"
	"folio/pkg/paint"
)

// FlowGroup lays out children top to bottom with fixed spacing, one page
// per Layout call. A child that does not fit is left for the next page; a
// child taller than a whole page is wrapped in a SpanningContainer when it
// reaches the top of an empty page.
type FlowGroup struct {
	children []Node
	opts     options
	logger   *log.Logger

	state FlowState

	// Per-pass fields, recomputed by every Layout.
	placed []placement
	box    geom.Rect
}

// NewFlowGroup creates a group over children. Relevant options are
// WithSpacing, WithWrapOversized, WithAlign and WithLogger; WithOrphans and
// WithMinChunkHeight are passed on to the containers it creates.
func NewFlowGroup(children []Node, opts ...Option) *FlowGroup {
	o := newOptions(opts)
	return &FlowGroup{
		children: children,
		opts:     o,
		logger:   o.logger,
	}
}

// Len returns the number of children.
func (fg *FlowGroup) Len() int { return len(fg.children) }

// Box returns the local box assigned by the last Layout.
func (fg *FlowGroup) Box() geom.Rect { return fg.box }

// Placed returns the nodes placed by the last Layout with their local
// boxes, in placement order.
func (fg *FlowGroup) Placed() ([]Node, []geom.Rect) {
	nodes := make([]Node, len(fg.placed))
	boxes := make([]geom.Rect, len(fg.placed))
	for i, p := range fg.placed {
		nodes[i] = p.node
		boxes[i] = p.box
	}
	return nodes, boxes
}

func (fg *FlowGroup) CanSpanPages() bool { return true }

func (fg *FlowGroup) HasMoreContent() bool {
	return fg.state.Next < len(fg.children) || fg.state.Wrapped != nil
}

// SaveState snapshots the group, including the progress of a child still
// being broken and of every spanning child not yet finished.
func (fg *FlowGroup) SaveState() State {
	if fg.state.Wrapped != nil {
		fg.state.WrappedState = fg.state.Wrapped.SaveState()
	}
	fg.state.Children = nil
	for i := fg.first(); i < len(fg.children); i++ {
		sp, ok := AsSpanner(fg.children[i])
		if !ok {
			continue
		}
		if fg.state.Children == nil {
			fg.state.Children = make(map[int]State)
		}
		fg.state.Children[i] = sp.SaveState()
	}
	return fg.state.Clone()
}

// RestoreState rewinds the group, its spanning children and the child it
// is breaking.
func (fg *FlowGroup) RestoreState(s State) error {
	if err := fg.state.Apply(s); err != nil {
		return err
	}
	for i, st := range fg.state.Children {
		if i < 0 || i >= len(fg.children) {
			return fmt.Errorf("%w: child %d out of range", ErrStateMismatch, i)
		}
		sp, ok := AsSpanner(fg.children[i])
		if !ok {
			return fmt.Errorf("%w: child %d does not span pages", ErrStateMismatch, i)
		}
		if err := sp.RestoreState(st); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	if fg.state.Wrapped != nil && fg.state.WrappedState != nil {
		return fg.state.Wrapped.RestoreState(fg.state.WrappedState)
	}
	return nil
}

// first returns the index the next pass starts at. While a child is being
// broken that is the child itself, one before Next.
func (fg *FlowGroup) first() int {
	if fg.state.Wrapped != nil {
		return fg.state.Next - 1
	}
	return fg.state.Next
}

// Measure returns the unconstrained size of everything not yet placed.
func (fg *FlowGroup) Measure(c geom.Constraints) geom.Size {
	unbounded := c.Unbounded()
	var size geom.Size
	count := 0
	for i := fg.first(); i < len(fg.children); i++ {
		child := fg.children[i]
		if i == fg.first() && fg.state.Wrapped != nil {
			child = fg.state.Wrapped
		}
		s := child.Measure(unbounded)
		if count > 0 {
			size.Height += fg.opts.spacing
		}
		size.Height += s.Height
		size.Width = math.Max(size.Width, s.Width)
		count++
	}
	return size
}

func (fg *FlowGroup) Layout(c geom.Constraints) (geom.Size, error) {
	fg.placed = fg.placed[:0]
	available := c.MaxHeight
	unbounded := c.Unbounded()
	cursor := 0.0

	start := fg.first()
	for i := start; i < len(fg.children); i++ {
		child := fg.children[i]
		if i == start && fg.state.Wrapped != nil {
			child = fg.state.Wrapped
		}

		gap := 0.0
		if len(fg.placed) > 0 {
			gap = fg.opts.spacing
		}
		size := child.Measure(unbounded)

		if cursor+gap+size.Height > available {
			if len(fg.placed) > 0 || size.Height <= available {
				// Leave it for the next page
				break
			}

			// First on an empty page and taller than the page: no single
			// page can hold it.
			if !fg.opts.wrapOversized {
				return geom.Size{}, &OversizeError{Index: i, Height: size.Height, PageHeight: available}
			}
			sp, ok := AsSpanner(child)
			if !ok {
				fg.logger.Debug("wrapping oversized child", "index", i, "height", size.Height, "page", available)
				sp = NewSpanningContainer(child, fg.spanOptions()...)
			}
			laid, err := sp.Layout(c.WithMaxHeight(available))
			if err != nil {
				return geom.Size{}, err
			}
			fg.place(sp, laid)
			cursor += laid.Height
			fg.state.Next = i + 1
			if sp.HasMoreContent() {
				fg.state.Wrapped = sp
				fg.state.WrappedState = sp.SaveState()
				break
			}
			fg.clearWrapped()
			continue
		}

		laid, err := child.Layout(c.WithMaxHeight(available - cursor - gap))
		if err != nil {
			return geom.Size{}, err
		}
		cursor += gap
		fg.place(child, laid)
		cursor += laid.Height
		fg.state.Next = i + 1

		// A spanner that fit by measurement normally completes here. If it
		// did not, keep breaking it on the next page.
		if sp, ok := AsSpanner(child); ok && sp.HasMoreContent() {
			fg.state.Wrapped = sp
			fg.state.WrappedState = sp.SaveState()
			break
		}
		fg.clearWrapped()
	}

	fg.restack(c)
	return fg.box.Size(), nil
}

func (fg *FlowGroup) clearWrapped() {
	fg.state.Wrapped = nil
	fg.state.WrappedState = nil
}

func (fg *FlowGroup) spanOptions() []Option {
	o := fg.opts
	return []Option{
		WithOrphans(o.allowOrphans),
		WithMinChunkHeight(o.minChunkHeight),
		WithLogger(o.logger),
	}
}

// place records a child on the current page. restack assigns its position.
func (fg *FlowGroup) place(n Node, size geom.Size) {
	fg.placed = append(fg.placed, placement{node: n, box: geom.NewRect(size)})
}

// restack positions placed children top to bottom, first placed at the top,
// and sets the group box.
func (fg *FlowGroup) restack(c geom.Constraints) {
	fg.box = stack(fg.placed, fg.opts.spacing, fg.opts.align, c)
}

func (fg *FlowGroup) Paint(s paint.Surface) {
	s.Push()
	defer s.Pop()

	s.Translate(fg.box.X, fg.box.Y)
	for _, p := range fg.placed {
		s.Push()
		s.Translate(p.box.X, p.box.Y)
		p.node.Paint(s)
		s.Pop()
	}
}
