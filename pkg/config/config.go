// Package config loads rendering settings from TOML.
//
//	[page]
//	width = 595
//	height = 842
//	margin = 36
//	background = "white"
//	max_pages = 1000
//	auto_break = true
//
//	[layout]
//	spacing = 4
//	align = "start"
//	allow_orphans = false
//	min_chunk_height = 20
//	wrap_oversized = true
//
//	[output]
//	dir = "out"
//	prefix = "page"
//
// Keys missing from the file keep their defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"folio/pkg/document"
	"folio/pkg/geom"
	"folio/pkg/layout"
	"folio/pkg/paint"
)

type Config struct {
	Page   Page   `toml:"page"`
	Layout Layout `toml:"layout"`
	Output Output `toml:"output"`
}

type Page struct {
	Width      float64  `toml:"width"`
	Height     float64  `toml:"height"`
	Margin     float64  `toml:"margin"`
	Margins    *Margins `toml:"margins"` // overrides Margin when set
	Background string   `toml:"background"`
	MaxPages   int      `toml:"max_pages"`
	AutoBreak  bool     `toml:"auto_break"`
}

type Margins struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

type Layout struct {
	Spacing        float64 `toml:"spacing"`
	Align          string  `toml:"align"`
	AllowOrphans   bool    `toml:"allow_orphans"`
	MinChunkHeight float64 `toml:"min_chunk_height"`
	WrapOversized  bool    `toml:"wrap_oversized"`
}

type Output struct {
	Dir    string `toml:"dir"`
	Prefix string `toml:"prefix"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	d := document.DefaultOptions()
	return Config{
		Page: Page{
			Width:      d.PageSize.Width,
			Height:     d.PageSize.Height,
			Margin:     d.Margins.Top,
			Background: "white",
			MaxPages:   d.MaxPages,
			AutoBreak:  d.AutoBreak,
		},
		Layout: Layout{
			Align:          layout.AlignStart.String(),
			MinChunkHeight: layout.DefaultMinChunkHeight,
			WrapOversized:  true,
		},
		Output: Output{Dir: "out", Prefix: "page"},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config keys: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the options constructors would reject.
func (c Config) Validate() error {
	if _, ok := paint.ParseColor(c.Page.Background); !ok {
		return fmt.Errorf("page.background: unknown color %q", c.Page.Background)
	}
	if _, err := layout.ParseAlign(c.Layout.Align); err != nil {
		return fmt.Errorf("layout.align: %w", err)
	}
	if c.Layout.Spacing < 0 {
		return fmt.Errorf("layout.spacing: negative value %g", c.Layout.Spacing)
	}
	if c.Layout.MinChunkHeight < 0 {
		return fmt.Errorf("layout.min_chunk_height: negative value %g", c.Layout.MinChunkHeight)
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("page.margin: negative value %g", c.Page.Margin)
	}
	return c.documentOptions(nil).Validate()
}

func (c Config) margins() document.Margins {
	if m := c.Page.Margins; m != nil {
		return document.Margins{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}
	}
	return document.UniformMargins(c.Page.Margin)
}

func (c Config) documentOptions(logger *log.Logger) document.Options {
	bg, _ := paint.ParseColor(c.Page.Background)
	return document.Options{
		PageSize:   geom.Size{Width: c.Page.Width, Height: c.Page.Height},
		Margins:    c.margins(),
		AutoBreak:  c.Page.AutoBreak,
		MaxPages:   c.Page.MaxPages,
		Background: bg,
		Logger:     logger,
	}
}

// DocumentOptions maps the [page] table onto driver options. The [layout]
// table configures the container an oversized root is wrapped in.
func (c Config) DocumentOptions(logger *log.Logger) document.Options {
	opts := c.documentOptions(logger)
	opts.SpanOptions = c.LayoutOptions(logger)
	return opts
}

// LayoutOptions maps the [layout] table onto FlowGroup and
// SpanningContainer options.
func (c Config) LayoutOptions(logger *log.Logger) []layout.Option {
	align, _ := layout.ParseAlign(c.Layout.Align)
	opts := []layout.Option{
		layout.WithSpacing(c.Layout.Spacing),
		layout.WithAlign(align),
		layout.WithOrphans(c.Layout.AllowOrphans),
		layout.WithMinChunkHeight(c.Layout.MinChunkHeight),
		layout.WithWrapOversized(c.Layout.WrapOversized),
	}
	if logger != nil {
		opts = append(opts, layout.WithLogger(logger))
	}
	return opts
}

// Sink returns a DirSink for the [output] table.
func (c Config) Sink() document.DirSink {
	return document.DirSink{Dir: c.Output.Dir, Prefix: c.Output.Prefix}
}
