package content

import (
	"folio/pkg/geom"
	"folio/pkg/paint"
)

// Rect is a filled, optionally stroked rectangle. A zero Width fills the
// available width.
type Rect struct {
	Width       float64
	Height      float64
	Fill        paint.Color
	Stroke      paint.Color
	StrokeWidth float64

	size geom.Size
}

// NewRect creates a filled rectangle.
func NewRect(width, height float64, fill paint.Color) *Rect {
	return &Rect{Width: width, Height: height, Fill: fill}
}

func (r *Rect) Measure(c geom.Constraints) geom.Size {
	w := r.Width
	if w <= 0 && c.HasBoundedWidth() {
		w = c.MaxWidth
	}
	return c.Constrain(geom.Size{Width: w, Height: r.Height})
}

func (r *Rect) Layout(c geom.Constraints) (geom.Size, error) {
	r.size = r.Measure(c)
	return r.size, nil
}

func (r *Rect) Paint(s paint.Surface) {
	box := geom.NewRect(r.size)
	s.FillRect(box, r.Fill)
	if r.StrokeWidth > 0 {
		s.StrokeRect(box, r.Stroke, r.StrokeWidth)
	}
}

// Spacer takes up vertical space and paints nothing.
type Spacer struct {
	Height float64
}

func (sp Spacer) Measure(c geom.Constraints) geom.Size {
	return geom.Size{Height: sp.Height}
}

func (sp Spacer) Layout(c geom.Constraints) (geom.Size, error) {
	return sp.Measure(c), nil
}

func (Spacer) Paint(paint.Surface) {}
