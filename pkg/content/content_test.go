package content

import (
	"image"
	"image/color"
	"testing"

	"folio/pkg/geom"
	"folio/pkg/layout"
	"folio/pkg/paint"
)

var page = geom.Loose(geom.Size{Width: 200, Height: 300})

func TestRect_FillsAvailableWidth(t *testing.T) {
	r := NewRect(0, 40, paint.Black)
	size, err := r.Layout(page)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if size.Width != 200 || size.Height != 40 {
		t.Errorf("Expected 200x40, got %gx%g", size.Width, size.Height)
	}

	unbounded := r.Measure(geom.Constraints{MaxWidth: geom.Inf, MaxHeight: geom.Inf})
	if unbounded.Width != 0 {
		t.Errorf("Expected zero width without a width bound, got %g", unbounded.Width)
	}
}

func TestRect_HeightIsNotClamped(t *testing.T) {
	r := NewRect(50, 500, paint.Black)
	if got := r.Measure(page).Height; got != 500 {
		t.Errorf("Expected height 500 to overflow the page, got %g", got)
	}
}

func TestRect_PaintsFillAndStroke(t *testing.T) {
	r := &Rect{Width: 50, Height: 20, Fill: paint.White, Stroke: paint.Black, StrokeWidth: 2}
	r.Layout(page)
	rec := paint.NewRecorder()
	r.Paint(rec)
	if len(rec.Ops) != 2 {
		t.Fatalf("Expected 2 ops, got %d", len(rec.Ops))
	}
	if rec.Ops[0].Kind != paint.OpFill || rec.Ops[1].Kind != paint.OpStroke {
		t.Errorf("Expected fill then stroke, got %v", rec.Ops)
	}
	if rec.Ops[0].Rect != (geom.Rect{Width: 50, Height: 20}) {
		t.Errorf("Expected rect at origin, got %v", rec.Ops[0].Rect)
	}
}

func TestSpacer(t *testing.T) {
	sp := Spacer{Height: 25}
	size, _ := sp.Layout(page)
	if size.Height != 25 || size.Width != 0 {
		t.Errorf("Expected 0x25, got %gx%g", size.Width, size.Height)
	}
	rec := paint.NewRecorder()
	sp.Paint(rec)
	if len(rec.Ops) != 0 {
		t.Errorf("Expected spacer to paint nothing, got %d ops", len(rec.Ops))
	}
}

func TestText_WrapsToWidth(t *testing.T) {
	// Face7x13 advances 7px per glyph, 13px per line.
	txt := NewText("aaaa bbbb cccc")
	size, _ := txt.Layout(geom.Loose(geom.Size{Width: 70, Height: 300}))

	lines := txt.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "aaaa bbbb" || lines[1] != "cccc" {
		t.Errorf("Unexpected lines %q", lines)
	}
	if size.Height != 26 {
		t.Errorf("Expected height 26, got %g", size.Height)
	}
	if size.Width != 63 {
		t.Errorf("Expected width 63, got %g", size.Width)
	}
}

func TestText_PaddingAndLineHeight(t *testing.T) {
	txt := &Text{Content: "one\ntwo", Color: paint.Black, Padding: 5, LineHeight: 20}
	size, _ := txt.Layout(page)
	if size.Height != 50 {
		t.Errorf("Expected 2*20+2*5=50, got %g", size.Height)
	}
	if size.Width != 31 {
		t.Errorf("Expected 21+10=31, got %g", size.Width)
	}
}

func TestText_PaintsTopDown(t *testing.T) {
	txt := NewText("first\nsecond")
	txt.Layout(page)
	rec := paint.NewRecorder()
	txt.Paint(rec)

	if len(rec.Ops) != 2 {
		t.Fatalf("Expected 2 text ops, got %d", len(rec.Ops))
	}
	first, second := rec.Ops[0], rec.Ops[1]
	if first.Text != "first" || second.Text != "second" {
		t.Errorf("Unexpected op order: %v", rec.Ops)
	}
	// Height 26, ascent 11: baselines at 15 and 2.
	if first.Rect.Y != 15 || second.Rect.Y != 2 {
		t.Errorf("Expected baselines 15 and 2, got %g and %g", first.Rect.Y, second.Rect.Y)
	}
}

func TestText_SpansPagesInsideFlowGroup(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "line\n"
	}
	fg := layout.NewFlowGroup([]layout.Node{NewText(long)})
	c := geom.Loose(geom.Size{Width: 200, Height: 260})

	pages := 0
	for fg.HasMoreContent() {
		if _, err := fg.Layout(c); err != nil {
			t.Fatalf("Layout failed: %v", err)
		}
		pages++
		if pages > 10 {
			t.Fatal("Expected the group to finish")
		}
	}
	// 41 lines of 13px is 533px.
	if pages != 3 {
		t.Errorf("Expected 3 pages, got %d", pages)
	}
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestImage_Sizing(t *testing.T) {
	src := testImage(40, 20)
	tests := []struct {
		name          string
		width, height float64
		c             geom.Constraints
		want          geom.Size
	}{
		{"natural", 0, 0, page, geom.Size{Width: 40, Height: 20}},
		{"width only", 80, 0, page, geom.Size{Width: 80, Height: 40}},
		{"height only", 0, 10, page, geom.Size{Width: 20, Height: 10}},
		{"both", 30, 30, page, geom.Size{Width: 30, Height: 30}},
		{"scaled down", 400, 0, page, geom.Size{Width: 200, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewImage(src, tt.width, tt.height).Measure(tt.c)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestImage_Paint(t *testing.T) {
	im := NewImage(testImage(10, 10), 0, 0)
	im.Layout(page)
	rec := paint.NewRecorder()
	im.Paint(rec)
	if len(rec.Ops) != 1 || rec.Ops[0].Kind != paint.OpImage {
		t.Fatalf("Expected one image op, got %v", rec.Ops)
	}
	if rec.Ops[0].Rect != (geom.Rect{Width: 10, Height: 10}) {
		t.Errorf("Unexpected image rect %v", rec.Ops[0].Rect)
	}
}

func TestLoadImage_MissingFile(t *testing.T) {
	if _, err := LoadImage("does-not-exist.png", 0, 0); err == nil {
		t.Error("Expected error for missing file")
	}
}
