package layout

import (
	"errors"
	"testing"

	"folio/pkg/geom"
	"folio/pkg/paint"
)

func TestColumn_StacksWithoutSplitting(t *testing.T) {
	col := NewColumn(nodes(newBlock(0, 700), newBlock(1, 700)), WithSpacing(20))

	size, err := col.Layout(page)
	if err != nil {
		t.Fatal(err)
	}
	if size.Height != 1420 {
		t.Errorf("Expected column to overflow at 1420, got %g", size.Height)
	}
	if col.Measure(page).Height != 1420 {
		t.Errorf("Expected Measure to agree with Layout")
	}

	rec := paint.NewRecorder()
	col.Paint(rec)
	if rec.Ops[0].Rect.Y != 720 || rec.Ops[1].Rect.Y != 0 {
		t.Errorf("Expected top-to-bottom stacking, got %v and %v", rec.Ops[0], rec.Ops[1])
	}
}

func TestColumn_WrappedByFlowGroup(t *testing.T) {
	col := NewColumn(nodes(newBlock(0, 700), newBlock(1, 700)), WithSpacing(20))
	fg := NewFlowGroup([]Node{col})

	pages := drive(t, fg, page)
	if len(pages) != 2 {
		t.Fatalf("Expected the column broken across 2 pages, got %d", len(pages))
	}
	sc, ok := pages[1][0].(*SpanningContainer)
	if !ok || sc.Child() != col || sc.ChunkHeight() != 420 {
		t.Errorf("Expected the column tail (420) on page 2, got %T", pages[1][0])
	}
}

func TestColumn_PropagatesChildError(t *testing.T) {
	col := NewColumn([]Node{failer{}})
	if _, err := col.Layout(page); err == nil {
		t.Error("Expected child error")
	}

	fg := NewFlowGroup([]Node{col}, WithWrapOversized(false))
	_, err := fg.Layout(geom.Constraints{MaxWidth: 100, MaxHeight: 100})
	if errors.Is(err, ErrOversizeWithoutBreaking) {
		return
	}
	t.Errorf("Expected oversize error, got %v", err)
}
