package paint

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"folio/pkg/geom"
)

// GG paints onto a gg raster context.
//
// The engine frame has its origin at the bottom-left of the page; gg's
// raster frame has it at the top-left, so every rectangle is flipped on
// the way out. Translation is tracked here rather than in gg's matrix.
//
// Note: gg's Pop keeps the current clip mask instead of restoring the
// pushed one, so the clip is tracked here too and re-applied on Pop.
type GG struct {
	dc     *gg.Context
	height float64
	origin geom.Point
	clip   *geom.Rect
	stack  []ggState
}

type ggState struct {
	origin geom.Point
	clip   *geom.Rect
}

// NewGG wraps an existing gg context.
func NewGG(dc *gg.Context) *GG {
	return &GG{dc: dc, height: float64(dc.Height())}
}

// NewPage creates a width x height raster cleared to bg.
func NewPage(width, height int, bg Color) *GG {
	dc := gg.NewContext(width, height)
	if bg.IsVisible() {
		dc.SetColor(bg.RGBA())
		dc.Clear()
	}
	return NewGG(dc)
}

// Context returns the underlying gg context.
func (s *GG) Context() *gg.Context { return s.dc }

// Image returns the rendered raster.
func (s *GG) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the raster as PNG.
func (s *GG) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// Depth returns the number of unmatched Push calls.
func (s *GG) Depth() int { return len(s.stack) }

func (s *GG) Push() {
	s.stack = append(s.stack, ggState{origin: s.origin, clip: s.clip})
}

func (s *GG) Pop() {
	if len(s.stack) == 0 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.origin = top.origin
	if top.clip != s.clip {
		s.clip = top.clip
		s.applyClip()
	}
}

func (s *GG) Translate(dx, dy float64) {
	s.origin.X += dx
	s.origin.Y += dy
}

func (s *GG) ClipRect(r geom.Rect) {
	abs := r.Translate(s.origin.X, s.origin.Y)
	if s.clip != nil {
		abs = s.clip.Intersect(abs)
	}
	s.clip = &abs
	s.applyClip()
}

// applyClip replaces gg's mask with the tracked clip. Clips are always
// axis-aligned rectangles, so the intersection is a single rectangle.
func (s *GG) applyClip() {
	s.dc.ResetClip()
	if s.clip == nil {
		return
	}
	x, y, w, h := s.device(*s.clip)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Clip()
}

// device converts an absolute engine-frame rectangle to gg's frame.
func (s *GG) device(r geom.Rect) (x, y, w, h float64) {
	return r.X, s.height - r.Top(), r.Width, r.Height
}

func (s *GG) FillRect(r geom.Rect, c Color) {
	if !c.IsVisible() || r.IsEmpty() {
		return
	}
	x, y, w, h := s.device(r.Translate(s.origin.X, s.origin.Y))
	s.dc.SetColor(c.RGBA())
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *GG) StrokeRect(r geom.Rect, c Color, width float64) {
	if !c.IsVisible() || width <= 0 {
		return
	}
	x, y, w, h := s.device(r.Translate(s.origin.X, s.origin.Y))
	s.dc.SetColor(c.RGBA())
	s.dc.SetLineWidth(width)
	// Inset by half the line width so the stroke stays inside r
	s.dc.DrawRectangle(x+width/2, y+width/2, w-width, h-width)
	s.dc.Stroke()
}

func (s *GG) DrawText(text string, x, baseline float64, style TextStyle) {
	if text == "" || !style.Color.IsVisible() {
		return
	}
	face := style.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(style.Color.RGBA())
	s.dc.DrawString(text, s.origin.X+x, s.height-(s.origin.Y+baseline))
}

func (s *GG) DrawImage(img image.Image, r geom.Rect) {
	b := img.Bounds()
	if b.Empty() || r.IsEmpty() {
		return
	}
	x, y, _, _ := s.device(r.Translate(s.origin.X, s.origin.Y))
	s.dc.Push()
	s.dc.Translate(x, y)
	s.dc.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	s.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	s.dc.Pop()
}
