// Package script builds layout trees from JavaScript.
//
// A script calls the builder functions and its last expression is the
// document root:
//
//	flow([
//	  text("Title", {padding: 4}),
//	  rect(0, 1500, {fill: "#ddd"}),
//	  text("The end"),
//	], {spacing: 8})
package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dop251/goja"

	"folio/pkg/layout"
)

// Engine evaluates document scripts in a fresh goja runtime.
type Engine struct {
	vm       *goja.Runtime
	logger   *log.Logger
	defaults []layout.Option
	baseDir  string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes console output and builder diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithLayoutOptions sets the options every flow, column and span starts
// from. Per-call properties override them.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(e *Engine) { e.defaults = append([]layout.Option(nil), opts...) }
}

// WithBaseDir resolves relative image paths against dir.
func WithBaseDir(dir string) Option {
	return func(e *Engine) { e.baseDir = dir }
}

// New creates a new engine with the builders and console registered.
func New(opts ...Option) *Engine {
	e := &Engine{vm: goja.New(), logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(e)
	}

	c := &consoleAPI{logger: e.logger.WithPrefix("script")}
	c.register(e.vm)

	b := &builders{vm: e.vm, engine: e}
	b.register()

	return e
}

// Run evaluates src and returns the node its last expression produced.
func (e *Engine) Run(name, src string) (layout.Node, error) {
	v, err := e.vm.RunScript(name, src)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, fmt.Errorf("script %s: last expression is not a node", name)
	}
	n, ok := v.Export().(layout.Node)
	if !ok {
		return nil, fmt.Errorf("script %s: last expression is %s, not a node", name, v.String())
	}
	return n, nil
}

// RunFile evaluates a script file. Relative image paths resolve against
// the file's directory unless a base directory was configured.
func (e *Engine) RunFile(path string) (layout.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	if e.baseDir == "" {
		e.baseDir = filepath.Dir(path)
	}
	return e.Run(filepath.Base(path), string(data))
}

func (e *Engine) resolve(src string) string {
	if e.baseDir == "" || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(e.baseDir, src)
}
