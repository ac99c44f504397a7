package layout

import (
	"fmt"
	"testing"

	"folio/pkg/geom"
	"folio/pkg/paint"
)

var page = geom.Constraints{MaxWidth: 500, MaxHeight: 1000}

func pageOf(height float64) geom.Constraints {
	return geom.Constraints{MaxWidth: 500, MaxHeight: height}
}

// block is a fixed-size leaf that fills its box.
type block struct {
	id       int
	w, h     float64
	layouts  int
	measures int
}

func newBlock(id int, h float64) *block {
	return &block{id: id, w: 100, h: h}
}

func (b *block) Measure(c geom.Constraints) geom.Size {
	b.measures++
	return geom.Size{Width: b.w, Height: b.h}
}

func (b *block) Layout(c geom.Constraints) (geom.Size, error) {
	b.layouts++
	return geom.Size{Width: b.w, Height: b.h}, nil
}

func (b *block) Paint(s paint.Surface) {
	s.FillRect(geom.Rect{Width: b.w, Height: b.h}, paint.Black)
}

// banded paints 100-unit bands labelled by their index from the top.
type banded struct {
	bands int
}

func (b *banded) size() geom.Size {
	return geom.Size{Width: 100, Height: float64(b.bands) * 100}
}

func (b *banded) Measure(c geom.Constraints) geom.Size { return b.size() }

func (b *banded) Layout(c geom.Constraints) (geom.Size, error) { return b.size(), nil }

func (b *banded) Paint(s paint.Surface) {
	h := b.size().Height
	for k := 0; k < b.bands; k++ {
		s.FillRect(geom.Rect{Y: h - float64(k+1)*100, Width: 100, Height: 100}, paint.Black)
		s.DrawText(fmt.Sprint(k), 0, h-float64(k+1)*100, paint.TextStyle{Color: paint.Black})
	}
}

// visibleBands returns the labels of bands whose fill survives the clip.
func visibleBands(ops []paint.Op) []string {
	var labels []string
	for i, op := range ops {
		if op.Kind != paint.OpFill || op.Visible().IsEmpty() {
			continue
		}
		labels = append(labels, ops[i+1].Text)
	}
	return labels
}

// failer is a leaf whose layout always fails.
type failer struct{}

func (failer) Measure(geom.Constraints) geom.Size { return geom.Size{Width: 10, Height: 5000} }

func (failer) Layout(geom.Constraints) (geom.Size, error) {
	return geom.Size{}, fmt.Errorf("layout failed")
}

func (failer) Paint(paint.Surface) {}

func unwrap(n Node) Node {
	if sc, ok := n.(*SpanningContainer); ok {
		return sc.Child()
	}
	return n
}

// drive lays fg out page by page and returns the placed nodes per page.
func drive(t *testing.T, fg *FlowGroup, c geom.Constraints) [][]Node {
	t.Helper()
	var pages [][]Node
	for i := 0; i < 1000; i++ {
		if _, err := fg.Layout(c); err != nil {
			t.Fatalf("Layout pass %d failed: %v", i, err)
		}
		nodes, _ := fg.Placed()
		pages = append(pages, nodes)
		if !fg.HasMoreContent() {
			return pages
		}
	}
	t.Fatal("Layout did not terminate")
	return nil
}
