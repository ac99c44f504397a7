package paint

import (
	"fmt"
	"image"

	"folio/pkg/geom"
)

// OpKind identifies a recorded drawing operation.
type OpKind string

const (
	OpFill   OpKind = "fill"
	OpStroke OpKind = "stroke"
	OpText   OpKind = "text"
	OpImage  OpKind = "image"
)

// Op is one recorded drawing operation in absolute page coordinates.
type Op struct {
	Kind    OpKind
	Rect    geom.Rect // for text: the baseline origin with zero size
	Color   Color
	Text    string
	Clipped bool
	Clip    geom.Rect
}

// Visible returns the part of the operation left visible by the clip.
func (op Op) Visible() geom.Rect {
	if !op.Clipped {
		return op.Rect
	}
	return op.Rect.Intersect(op.Clip)
}

func (op Op) String() string {
	if op.Kind == OpText {
		return fmt.Sprintf("%s %q at (%g, %g)", op.Kind, op.Text, op.Rect.X, op.Rect.Y)
	}
	return fmt.Sprintf("%s (%g, %g, %g, %g)", op.Kind, op.Rect.X, op.Rect.Y, op.Rect.Width, op.Rect.Height)
}

// Recorder is a Surface that records operations instead of rasterizing
// them. It is used by tests and by the inspect command.
type Recorder struct {
	Ops []Op

	origin   geom.Point
	clip     *geom.Rect
	stack    []ggState
	maxDepth int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset discards all recorded operations and state.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

// Depth returns the number of unmatched Push calls.
func (r *Recorder) Depth() int { return len(r.stack) }

// MaxDepth returns the deepest Push nesting seen.
func (r *Recorder) MaxDepth() int { return r.maxDepth }

// Origin returns the current translation.
func (r *Recorder) Origin() geom.Point { return r.origin }

// Clip returns the current absolute clip, if any.
func (r *Recorder) Clip() (geom.Rect, bool) {
	if r.clip == nil {
		return geom.Rect{}, false
	}
	return *r.clip, true
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, ggState{origin: r.origin, clip: r.clip})
	if len(r.stack) > r.maxDepth {
		r.maxDepth = len(r.stack)
	}
}

func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.origin = top.origin
	r.clip = top.clip
}

func (r *Recorder) Translate(dx, dy float64) {
	r.origin.X += dx
	r.origin.Y += dy
}

func (r *Recorder) ClipRect(rect geom.Rect) {
	abs := rect.Translate(r.origin.X, r.origin.Y)
	if r.clip != nil {
		abs = r.clip.Intersect(abs)
	}
	r.clip = &abs
}

func (r *Recorder) record(kind OpKind, rect geom.Rect, c Color, text string) {
	op := Op{Kind: kind, Rect: rect.Translate(r.origin.X, r.origin.Y), Color: c, Text: text}
	if r.clip != nil {
		op.Clipped = true
		op.Clip = *r.clip
	}
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) FillRect(rect geom.Rect, c Color) {
	r.record(OpFill, rect, c, "")
}

func (r *Recorder) StrokeRect(rect geom.Rect, c Color, width float64) {
	r.record(OpStroke, rect, c, "")
}

func (r *Recorder) DrawText(s string, x, baseline float64, style TextStyle) {
	r.record(OpText, geom.Rect{X: x, Y: baseline}, style.Color, s)
}

func (r *Recorder) DrawImage(img image.Image, rect geom.Rect) {
	r.record(OpImage, rect, Color{}, "")
}
