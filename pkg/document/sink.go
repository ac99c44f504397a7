package document

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// PageInfo describes one emitted page.
type PageInfo struct {
	Number int
	Used   float64 // height of the root's box on this page
	State  string  // root pagination state after the pass
}

// Page is a rendered page handed to a Sink.
type Page struct {
	PageInfo
	Image image.Image
}

// Sink receives pages in order.
type Sink interface {
	WritePage(ctx context.Context, p Page) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, p Page) error

func (f SinkFunc) WritePage(ctx context.Context, p Page) error { return f(ctx, p) }

// MemorySink collects pages in memory.
type MemorySink struct {
	Pages []Page
}

func (m *MemorySink) WritePage(_ context.Context, p Page) error {
	m.Pages = append(m.Pages, p)
	return nil
}

// DirSink writes each page to Dir as <Prefix>-NNN.png.
type DirSink struct {
	Dir    string
	Prefix string // defaults to "page"
}

// Path returns the file a page number is written to.
func (d DirSink) Path(number int) string {
	prefix := d.Prefix
	if prefix == "" {
		prefix = "page"
	}
	return filepath.Join(d.Dir, fmt.Sprintf("%s-%03d.png", prefix, number))
}

func (d DirSink) WritePage(_ context.Context, p Page) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := gg.SavePNG(d.Path(p.Number), p.Image); err != nil {
		return fmt.Errorf("save page %d: %w", p.Number, err)
	}
	return nil
}
