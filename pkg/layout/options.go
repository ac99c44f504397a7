package layout

import "github.com/charmbracelet/log"

// DefaultMinChunkHeight is the smallest fragment a SpanningContainer places
// at the bottom of a page when orphaned fragments are not allowed.
const DefaultMinChunkHeight = 20.0

// Option configures a SpanningContainer, FlowGroup or Column. Options that
// do not apply to a node kind are ignored by it; a FlowGroup forwards its
// options to the containers it creates around oversized children.
type Option func(*options)

type options struct {
	spacing        float64
	wrapOversized  bool
	align          Align
	allowOrphans   bool
	minChunkHeight float64
	logger         *log.Logger
}

func newOptions(opts []Option) options {
	o := options{
		wrapOversized:  true,
		align:          AlignStart,
		minChunkHeight: DefaultMinChunkHeight,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}
	return o
}

// WithSpacing sets the vertical gap between consecutive children.
func WithSpacing(spacing float64) Option {
	return func(o *options) { o.spacing = spacing }
}

// WithWrapOversized controls whether a FlowGroup breaks a child taller than
// a page. When disabled such a child is an OversizeError.
func WithWrapOversized(wrap bool) Option {
	return func(o *options) { o.wrapOversized = wrap }
}

// WithAlign sets the cross-axis alignment of children.
func WithAlign(a Align) Option {
	return func(o *options) { o.align = a }
}

// WithOrphans allows a SpanningContainer to place fragments smaller than
// the minimum chunk height at the bottom of a page.
func WithOrphans(allow bool) Option {
	return func(o *options) { o.allowOrphans = allow }
}

// WithMinChunkHeight sets the smallest fragment placed when orphans are not
// allowed.
func WithMinChunkHeight(h float64) Option {
	return func(o *options) { o.minChunkHeight = h }
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}
