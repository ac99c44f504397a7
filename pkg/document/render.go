// Package document drives a layout tree across pages and rasterizes each
// page.
//
// Render repeats Layout, Paint and emit until the root reports no more
// content. A root that does not paginate is rendered on a single page, or
// wrapped in a SpanningContainer when it does not fit and AutoBreak is set.
package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"folio/pkg/geom"
	"folio/pkg/layout"
	"folio/pkg/paint"
)

var (
	// ErrNoProgress is returned when two consecutive pages leave the root's
	// pagination state unchanged.
	ErrNoProgress = errors.New("document: layout made no progress")

	// ErrPageLimit is returned when the root still has content after
	// MaxPages pages.
	ErrPageLimit = errors.New("document: page limit reached")
)

// Stats summarizes a Render call.
type Stats struct {
	Pages []PageInfo
}

// PageCount returns the number of pages emitted.
func (s Stats) PageCount() int { return len(s.Pages) }

// Render lays out root page by page and hands each rasterized page to sink.
// ctx is checked between pages.
func Render(ctx context.Context, root layout.Node, opts Options, sink Sink) (Stats, error) {
	var stats Stats
	if err := opts.Validate(); err != nil {
		return stats, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	area := opts.ContentArea()
	c := geom.Loose(area.Size())

	sp, ok := layout.AsSpanner(root)
	if !ok {
		h := root.Measure(c.Unbounded()).Height
		if h > area.Height {
			if !opts.AutoBreak {
				return stats, &layout.OversizeError{Index: -1, Height: h, PageHeight: area.Height}
			}
			logger.Debug("wrapping oversized root", "height", h, "page", area.Height)
			spanOpts := append([]layout.Option{layout.WithLogger(logger)}, opts.SpanOptions...)
			sp = layout.NewSpanningContainer(root, spanOpts...)
		} else {
			err := renderPage(ctx, root, nil, 1, opts, sink, &stats, logger)
			return stats, err
		}
	}

	stalled := 0
	for number := 1; ; number++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if opts.MaxPages > 0 && number > opts.MaxPages {
			return stats, fmt.Errorf("%w: %d pages", ErrPageLimit, opts.MaxPages)
		}

		before := sp.SaveState()
		if err := renderPage(ctx, sp, sp, number, opts, sink, &stats, logger); err != nil {
			return stats, err
		}
		if !sp.HasMoreContent() {
			return stats, nil
		}

		if before.Equal(sp.SaveState()) {
			stalled++
			if stalled >= 2 {
				return stats, fmt.Errorf("%w: page %d, state %v", ErrNoProgress, number, before)
			}
		} else {
			stalled = 0
		}
	}
}

func renderPage(ctx context.Context, root layout.Node, sp layout.Spanner, number int, opts Options, sink Sink, stats *Stats, logger *log.Logger) error {
	area := opts.ContentArea()
	size, err := root.Layout(geom.Loose(area.Size()))
	if err != nil {
		return fmt.Errorf("page %d: %w", number, err)
	}

	surface := paint.NewPage(int(math.Ceil(opts.PageSize.Width)), int(math.Ceil(opts.PageSize.Height)), opts.Background)
	surface.Push()
	surface.ClipRect(area)
	// Pin the root to the top of the content area
	surface.Translate(area.X, area.Top()-size.Height)
	root.Paint(surface)
	surface.Pop()

	info := PageInfo{Number: number, Used: size.Height}
	if sp != nil {
		info.State = sp.SaveState().String()
	}
	logger.Debug("page emitted", "page", number, "height", size.Height, "state", info.State)

	if err := sink.WritePage(ctx, Page{PageInfo: info, Image: surface.Image()}); err != nil {
		return fmt.Errorf("page %d: %w", number, err)
	}
	stats.Pages = append(stats.Pages, info)
	return nil
}
