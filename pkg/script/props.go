package script

import (
	"fmt"

	"folio/pkg/paint"
)

// props is an exported JS properties object.
type props struct {
	b  *builders
	fn string
	m  map[string]interface{}
}

func (p props) has(key string) bool {
	_, ok := p.m[key]
	return ok
}

func (p props) number(key string, def float64) float64 {
	v, ok := p.m[key]
	if !ok || v == nil {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		p.b.throw("%s: %s must be a number, got %v", p.fn, key, v)
	}
	return f
}

func (p props) str(key, def string) string {
	v, ok := p.m[key]
	if !ok || v == nil {
		return def
	}
	return fmt.Sprint(v)
}

func (p props) boolean(key string, def bool) bool {
	v, ok := p.m[key]
	if !ok || v == nil {
		return def
	}
	bv, ok := v.(bool)
	if !ok {
		p.b.throw("%s: %s must be a boolean, got %v", p.fn, key, v)
	}
	return bv
}

func (p props) color(key string, def paint.Color) paint.Color {
	s := p.str(key, "")
	if s == "" {
		return def
	}
	c, ok := paint.ParseColor(s)
	if !ok {
		p.b.throw("%s: unknown color %q", p.fn, s)
	}
	return c
}

// toFloat converts an exported JS number.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
