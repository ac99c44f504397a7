package content

import (
	"math"

	"golang.org/x/image/font"

	"folio/pkg/geom"
	"folio/pkg/paint"
	"folio/pkg/text"
)

// Text is a paragraph wrapped to the width it is laid out in.
type Text struct {
	Content    string
	Face       font.Face // nil uses text.DefaultFace
	Color      paint.Color
	Background paint.Color
	LineHeight float64 // 0 uses the face's line height
	Padding    float64

	lines []string
	size  geom.Size
}

// NewText creates a black paragraph in the default face.
func NewText(content string) *Text {
	return &Text{Content: content, Color: paint.Black}
}

func (t *Text) lineHeight() float64 {
	if t.LineHeight > 0 {
		return t.LineHeight
	}
	return text.LineHeight(t.Face)
}

// wrap breaks the content for the given constraints and returns the lines
// with the resulting size.
func (t *Text) wrap(c geom.Constraints) ([]string, geom.Size) {
	maxWidth := geom.Inf
	if c.HasBoundedWidth() {
		maxWidth = math.Max(0, c.MaxWidth-2*t.Padding)
	}
	lines := text.Wrap(t.Face, t.Content, maxWidth)

	width := 0.0
	for _, line := range lines {
		w, _ := text.Measure(t.Face, line)
		width = math.Max(width, w)
	}
	size := geom.Size{
		Width:  width + 2*t.Padding,
		Height: float64(len(lines))*t.lineHeight() + 2*t.Padding,
	}
	return lines, c.Constrain(size)
}

func (t *Text) Measure(c geom.Constraints) geom.Size {
	_, size := t.wrap(c)
	return size
}

func (t *Text) Layout(c geom.Constraints) (geom.Size, error) {
	t.lines, t.size = t.wrap(c)
	return t.size, nil
}

// Lines returns the lines produced by the last Layout.
func (t *Text) Lines() []string { return t.lines }

func (t *Text) Paint(s paint.Surface) {
	if t.Background.IsVisible() {
		s.FillRect(geom.NewRect(t.size), t.Background)
	}

	style := paint.TextStyle{Face: t.Face, Color: t.Color}
	lh := t.lineHeight()
	ascent := text.Ascent(t.Face)
	// Center the glyphs vertically when the line height exceeds the face's
	lead := math.Max(0, (lh-text.LineHeight(t.Face))/2)
	top := t.size.Height - t.Padding
	for _, line := range t.lines {
		s.DrawText(line, t.Padding, top-lead-ascent, style)
		top -= lh
	}
}
