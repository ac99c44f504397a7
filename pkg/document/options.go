package document

import (
	"fmt"

	"github.com/charmbracelet/log"

	"folio/pkg/geom"
	"folio/pkg/layout"
	"folio/pkg/paint"
)

// Margins are the blank borders around the content area of every page.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// UniformMargins returns the same margin on all four sides.
func UniformMargins(m float64) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}

// A4 at 72 dpi.
var A4 = geom.Size{Width: 595, Height: 842}

// Options configure a Render call.
type Options struct {
	PageSize   geom.Size
	Margins    Margins
	AutoBreak  bool // wrap an oversized non-spanning root in a SpanningContainer
	MaxPages   int  // 0 means unlimited
	Background paint.Color
	Logger     *log.Logger
	// SpanOptions configure the SpanningContainer AutoBreak wraps an
	// oversized root in, such as WithOrphans and WithMinChunkHeight.
	SpanOptions []layout.Option
}

// DefaultOptions returns A4 pages with 36pt margins on white.
func DefaultOptions() Options {
	return Options{
		PageSize:   A4,
		Margins:    UniformMargins(36),
		AutoBreak:  true,
		MaxPages:   1000,
		Background: paint.White,
	}
}

// ContentArea is the page minus its margins, in page coordinates.
func (o Options) ContentArea() geom.Rect {
	return geom.Rect{
		X:      o.Margins.Left,
		Y:      o.Margins.Bottom,
		Width:  o.PageSize.Width - o.Margins.Left - o.Margins.Right,
		Height: o.PageSize.Height - o.Margins.Top - o.Margins.Bottom,
	}
}

// Validate reports options that cannot produce a page.
func (o Options) Validate() error {
	if o.PageSize.Width <= 0 || o.PageSize.Height <= 0 {
		return fmt.Errorf("invalid page size %gx%g", o.PageSize.Width, o.PageSize.Height)
	}
	m := o.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return fmt.Errorf("negative margins %+v", m)
	}
	if o.ContentArea().IsEmpty() {
		return fmt.Errorf("margins %+v leave no content area on a %gx%g page", m, o.PageSize.Width, o.PageSize.Height)
	}
	if o.MaxPages < 0 {
		return fmt.Errorf("negative page limit %d", o.MaxPages)
	}
	return nil
}
