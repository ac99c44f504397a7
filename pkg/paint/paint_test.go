package paint

import (
	"image/color"
	"testing"

	"folio/pkg/geom"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", Color{255, 0, 0, 1}, true},
		{"  Navy ", Color{0, 0, 128, 1}, true},
		{"#00ff80", Color{0, 255, 128, 1}, true},
		{"#fff", Color{255, 255, 255, 1}, true},
		{"#12345", Color{}, false},
		{"#zzzzzz", Color{}, false},
		{"chartreuse-ish", Color{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, %v; expected %+v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestColor_RGBA(t *testing.T) {
	got := Color{200, 100, 50, 0.5}.RGBA()
	want := color.RGBA{100, 50, 25, 127}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRecorder_PushPopRestoresClipAndOrigin(t *testing.T) {
	r := NewRecorder()
	r.Translate(10, 20)
	r.Push()
	r.Translate(5, 5)
	r.ClipRect(geom.Rect{Width: 50, Height: 50})
	r.FillRect(geom.Rect{Width: 100, Height: 100}, Black)
	r.Pop()
	r.FillRect(geom.Rect{Width: 1, Height: 1}, Black)

	if r.Depth() != 0 {
		t.Errorf("Expected balanced depth, got %d", r.Depth())
	}
	if len(r.Ops) != 2 {
		t.Fatalf("Expected 2 ops, got %d", len(r.Ops))
	}

	first := r.Ops[0]
	if first.Rect != (geom.Rect{X: 15, Y: 25, Width: 100, Height: 100}) {
		t.Errorf("Unexpected first rect %+v", first.Rect)
	}
	if !first.Clipped || first.Clip != (geom.Rect{X: 15, Y: 25, Width: 50, Height: 50}) {
		t.Errorf("Unexpected first clip %+v", first.Clip)
	}
	if first.Visible() != (geom.Rect{X: 15, Y: 25, Width: 50, Height: 50}) {
		t.Errorf("Unexpected visible area %+v", first.Visible())
	}

	second := r.Ops[1]
	if second.Clipped {
		t.Error("Clip should not leak past Pop")
	}
	if second.Rect.X != 10 || second.Rect.Y != 20 {
		t.Errorf("Origin should be restored by Pop, got (%f, %f)", second.Rect.X, second.Rect.Y)
	}
}

func TestRecorder_NestedClipsIntersect(t *testing.T) {
	r := NewRecorder()
	r.ClipRect(geom.Rect{Width: 100, Height: 100})
	r.ClipRect(geom.Rect{X: 50, Y: 50, Width: 100, Height: 100})
	clip, ok := r.Clip()
	if !ok {
		t.Fatal("Expected an active clip")
	}
	if clip != (geom.Rect{X: 50, Y: 50, Width: 50, Height: 50}) {
		t.Errorf("Expected intersected clip, got %+v", clip)
	}
}

func samePixel(t *testing.T, s *GG, x, y int, want Color) {
	t.Helper()
	got := color.RGBAModel.Convert(s.Image().At(x, y)).(color.RGBA)
	if got != want.RGBA() {
		t.Errorf("Pixel (%d, %d): expected %v, got %v", x, y, want.RGBA(), got)
	}
}

func TestGG_FlipsToRasterFrame(t *testing.T) {
	s := NewPage(100, 100, White)
	red := Color{255, 0, 0, 1}
	s.FillRect(geom.Rect{Width: 10, Height: 10}, red)

	// Bottom-left in the engine frame is the bottom rows of the raster
	samePixel(t, s, 5, 95, red)
	samePixel(t, s, 5, 5, White)
}

func TestGG_PopRestoresClip(t *testing.T) {
	s := NewPage(100, 100, White)
	red := Color{255, 0, 0, 1}
	blue := Color{0, 0, 255, 1}

	s.Push()
	s.ClipRect(geom.Rect{Width: 50, Height: 100})
	s.FillRect(geom.Rect{Width: 100, Height: 100}, red)
	s.Pop()

	samePixel(t, s, 25, 50, red)
	samePixel(t, s, 75, 50, White)

	s.FillRect(geom.Rect{X: 60, Width: 40, Height: 100}, blue)
	samePixel(t, s, 75, 50, blue)

	if s.Depth() != 0 {
		t.Errorf("Expected balanced depth, got %d", s.Depth())
	}
}

func TestGG_TranslateAccumulates(t *testing.T) {
	s := NewPage(100, 100, White)
	red := Color{255, 0, 0, 1}
	s.Translate(40, 40)
	s.Push()
	s.Translate(10, 10)
	s.FillRect(geom.Rect{Width: 10, Height: 10}, red)
	s.Pop()

	// Rect covers engine x 50..60, y 50..60, raster rows 40..50
	samePixel(t, s, 55, 45, red)
	samePixel(t, s, 45, 55, White)
}
