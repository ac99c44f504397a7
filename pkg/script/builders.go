package script

import (
	"github.com/dop251/goja"
	"golang.org/x/image/font"

	"folio/pkg/content"
	"folio/pkg/images"
	"folio/pkg/layout"
	"folio/pkg/paint"
	"folio/pkg/text"
)

// builders binds the node constructors to a runtime. Every builder returns
// the Go node wrapped as a JS object; Export recovers it.
type builders struct {
	vm     *goja.Runtime
	engine *Engine
}

func (b *builders) register() {
	b.vm.Set("rect", b.rect)
	b.vm.Set("spacer", b.spacer)
	b.vm.Set("text", b.text)
	b.vm.Set("image", b.image)
	b.vm.Set("flow", b.flow)
	b.vm.Set("column", b.column)
	b.vm.Set("span", b.span)
}

func (b *builders) throw(format string, args ...interface{}) {
	panic(b.vm.NewTypeError(append([]interface{}{format}, args...)...))
}

// number reads a required numeric argument.
func (b *builders) number(call goja.FunctionCall, i int, fn, name string) float64 {
	v := call.Argument(i)
	f, ok := toFloat(v.Export())
	if !ok {
		b.throw("%s: %s must be a number, got %s", fn, name, v.String())
	}
	return f
}

// props reads an optional trailing properties object.
func (b *builders) props(call goja.FunctionCall, i int, fn string) props {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return props{b: b, fn: fn}
	}
	m, ok := v.Export().(map[string]interface{})
	if !ok {
		b.throw("%s: properties must be an object, got %s", fn, v.String())
	}
	return props{b: b, fn: fn, m: m}
}

// nodes reads an array of nodes.
func (b *builders) nodes(call goja.FunctionCall, i int, fn string) []layout.Node {
	v := call.Argument(i)
	items, ok := v.Export().([]interface{})
	if !ok {
		b.throw("%s: children must be an array, got %s", fn, v.String())
	}
	children := make([]layout.Node, len(items))
	for j, item := range items {
		n, ok := item.(layout.Node)
		if !ok {
			b.throw("%s: child %d is not a node", fn, j)
		}
		children[j] = n
	}
	return children
}

func (b *builders) node(call goja.FunctionCall, i int, fn string) layout.Node {
	n, ok := call.Argument(i).Export().(layout.Node)
	if !ok {
		b.throw("%s: argument %d is not a node", fn, i)
	}
	return n
}

// rect(width, height, {fill, stroke, strokeWidth})
func (b *builders) rect(call goja.FunctionCall) goja.Value {
	p := b.props(call, 2, "rect")
	r := &content.Rect{
		Width:       b.number(call, 0, "rect", "width"),
		Height:      b.number(call, 1, "rect", "height"),
		Fill:        p.color("fill", paint.Black),
		Stroke:      p.color("stroke", paint.Black),
		StrokeWidth: p.number("strokeWidth", 0),
	}
	return b.vm.ToValue(r)
}

// spacer(height)
func (b *builders) spacer(call goja.FunctionCall) goja.Value {
	return b.vm.ToValue(&content.Spacer{Height: b.number(call, 0, "spacer", "height")})
}

// text(content, {color, background, lineHeight, padding, font, size})
func (b *builders) text(call goja.FunctionCall) goja.Value {
	if goja.IsUndefined(call.Argument(0)) {
		b.throw("text: content is required")
	}
	p := b.props(call, 1, "text")
	t := &content.Text{
		Content:    call.Argument(0).String(),
		Color:      p.color("color", paint.Black),
		Background: p.color("background", paint.Transparent),
		LineHeight: p.number("lineHeight", 0),
		Padding:    p.number("padding", 0),
		Face:       b.face(p),
	}
	return b.vm.ToValue(t)
}

func (b *builders) face(p props) font.Face {
	path := p.str("font", "")
	if path == "" {
		return nil
	}
	face, err := text.LoadFace(b.engine.resolve(path), p.number("size", 12))
	if err != nil {
		b.throw("text: %v", err)
	}
	return face
}

// image(src, {width, height})
func (b *builders) image(call goja.FunctionCall) goja.Value {
	src := call.Argument(0).String()
	p := b.props(call, 1, "image")
	if !images.IsDataURI(src) {
		src = b.engine.resolve(src)
	}
	im, err := content.LoadImage(src, p.number("width", 0), p.number("height", 0))
	if err != nil {
		b.throw("image: %v", err)
	}
	return b.vm.ToValue(im)
}

// flow(children, {spacing, align, wrap, orphans, minChunk})
func (b *builders) flow(call goja.FunctionCall) goja.Value {
	children := b.nodes(call, 0, "flow")
	p := b.props(call, 1, "flow")
	return b.vm.ToValue(layout.NewFlowGroup(children, b.layoutOptions(p)...))
}

// column(children, {spacing, align})
func (b *builders) column(call goja.FunctionCall) goja.Value {
	children := b.nodes(call, 0, "column")
	p := b.props(call, 1, "column")
	return b.vm.ToValue(layout.NewColumn(children, b.layoutOptions(p)...))
}

// span(child, {orphans, minChunk})
func (b *builders) span(call goja.FunctionCall) goja.Value {
	child := b.node(call, 0, "span")
	p := b.props(call, 1, "span")
	return b.vm.ToValue(layout.NewSpanningContainer(child, b.layoutOptions(p)...))
}

// layoutOptions starts from the engine defaults and appends any
// per-call overrides.
func (b *builders) layoutOptions(p props) []layout.Option {
	opts := append([]layout.Option(nil), b.engine.defaults...)
	opts = append(opts, layout.WithLogger(b.engine.logger))
	if p.has("spacing") {
		opts = append(opts, layout.WithSpacing(p.number("spacing", 0)))
	}
	if p.has("align") {
		a, err := layout.ParseAlign(p.str("align", ""))
		if err != nil {
			b.throw("%s: %v", p.fn, err)
		}
		opts = append(opts, layout.WithAlign(a))
	}
	if p.has("wrap") {
		opts = append(opts, layout.WithWrapOversized(p.boolean("wrap", true)))
	}
	if p.has("orphans") {
		opts = append(opts, layout.WithOrphans(p.boolean("orphans", false)))
	}
	if p.has("minChunk") {
		opts = append(opts, layout.WithMinChunkHeight(p.number("minChunk", layout.DefaultMinChunkHeight)))
	}
	return opts
}
