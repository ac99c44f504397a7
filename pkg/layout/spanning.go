package layout

import (
	"math"

	"github.com/charmbracelet/log"

	"folio/pkg/geom"
	"folio/pkg/paint"
)

// SpanningContainer breaks a single child that may be taller than a page.
//
// The child is measured once at unconstrained height. Each Layout assigns
// the next vertical slice of that measurement to the current page, and
// Paint draws the whole child clipped to the slice, so the child never
// needs to know about pagination.
type SpanningContainer struct {
	child          Node
	allowOrphans   bool
	minChunkHeight float64
	logger         *log.Logger

	state SpanningState

	// Per-pass fields, recomputed by every Layout.
	measured    bool
	measureErr  error
	full        geom.Size
	startOffset float64
	chunkHeight float64
	box         geom.Rect
	// deferred is set when the last pass declined a fragment below the
	// minimum chunk height.
	deferred bool
	// pagesTooSmall is set when a pass right after a deferral still could
	// not fit a minimum chunk; orphan avoidance is off from then on.
	pagesTooSmall bool
}

// NewSpanningContainer wraps child. Relevant options are WithOrphans,
// WithMinChunkHeight and WithLogger.
func NewSpanningContainer(child Node, opts ...Option) *SpanningContainer {
	o := newOptions(opts)
	return &SpanningContainer{
		child:          child,
		allowOrphans:   o.allowOrphans,
		minChunkHeight: o.minChunkHeight,
		logger:         o.logger,
	}
}

// Child returns the wrapped node.
func (sc *SpanningContainer) Child() Node { return sc.child }

// Box returns the local box assigned by the last Layout.
func (sc *SpanningContainer) Box() geom.Rect { return sc.box }

// ChunkHeight returns the height of the slice assigned to the current page.
func (sc *SpanningContainer) ChunkHeight() float64 { return sc.chunkHeight }

// StartOffset returns the offset from the child's top where the current
// slice begins.
func (sc *SpanningContainer) StartOffset() float64 { return sc.startOffset }

// FullHeight returns the child's cached unconstrained height.
func (sc *SpanningContainer) FullHeight() float64 { return sc.full.Height }

func (sc *SpanningContainer) CanSpanPages() bool { return true }

func (sc *SpanningContainer) HasMoreContent() bool { return !sc.state.Complete }

func (sc *SpanningContainer) SaveState() State { return sc.state.Clone() }

func (sc *SpanningContainer) RestoreState(s State) error {
	if err := sc.state.Apply(s); err != nil {
		return err
	}
	sc.deferred = false
	sc.pagesTooSmall = false
	return nil
}

// ensureMeasured lays the child out once at unconstrained height. The
// result, or the child's error, is cached for the life of the container.
func (sc *SpanningContainer) ensureMeasured(c geom.Constraints) error {
	if sc.measured {
		return nil
	}
	if sc.measureErr != nil {
		return sc.measureErr
	}
	size, err := sc.child.Layout(c.Unbounded())
	if err != nil {
		sc.measureErr = err
		return err
	}
	sc.full = size
	sc.measured = true
	return nil
}

// Measure returns the part of the child not yet rendered. A child that
// fails to lay out measures as zero; the cached error is returned by the
// next Layout.
func (sc *SpanningContainer) Measure(c geom.Constraints) geom.Size {
	if err := sc.ensureMeasured(c); err != nil {
		return geom.Size{}
	}
	return geom.Size{Width: sc.full.Width, Height: math.Max(0, sc.full.Height-sc.state.Consumed)}
}

func (sc *SpanningContainer) Layout(c geom.Constraints) (geom.Size, error) {
	if err := sc.ensureMeasured(c); err != nil {
		return geom.Size{}, err
	}
	sc.startOffset = sc.state.Consumed
	available := c.MaxHeight

	if sc.state.Consumed == 0 && sc.full.Height <= available {
		sc.chunkHeight = sc.full.Height
		sc.state.Consumed = sc.full.Height
		sc.state.Complete = true
		sc.deferred = false
		sc.box = geom.NewRect(sc.full)
		return sc.full, nil
	}

	remaining := sc.full.Height - sc.state.Consumed
	var chunk float64
	if remaining <= available {
		chunk = remaining
		sc.state.Consumed = sc.full.Height
		sc.state.Complete = true
		sc.deferred = false
	} else {
		chunk = math.Max(0, available)
		deferred := false
		if !sc.allowOrphans && !sc.pagesTooSmall && chunk < sc.minChunkHeight {
			if sc.deferred {
				sc.logger.Debug("page cannot hold a minimum chunk, placing fragment",
					"available", available, "min", sc.minChunkHeight)
				sc.pagesTooSmall = true
			} else {
				sc.logger.Debug("deferring fragment below minimum chunk height",
					"available", available, "min", sc.minChunkHeight, "consumed", sc.state.Consumed)
				chunk = 0
				deferred = true
			}
		}
		sc.deferred = deferred
		sc.state.Consumed += chunk
	}

	sc.chunkHeight = chunk
	sc.box = geom.Rect{Width: sc.full.Width, Height: math.Max(0, chunk)}
	return sc.box.Size(), nil
}

// Paint draws the child in full, clipped to the current slice.
func (sc *SpanningContainer) Paint(s paint.Surface) {
	if sc.box.Height <= 0 || sc.chunkHeight <= 0 {
		return
	}
	s.Push()
	defer s.Pop()

	s.ClipRect(sc.box)
	// Shift the child so the slice [startOffset, startOffset+chunk) from its
	// top lands on the box.
	s.Translate(sc.box.X, sc.box.Y-(sc.full.Height-sc.startOffset-sc.chunkHeight))
	sc.child.Paint(s)
}
