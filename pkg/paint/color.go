package paint

import (
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit RGB color with a float alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{255, 255, 255, 1}
	Transparent = Color{}
)

var namedColors = map[string]Color{
	"red":     {255, 0, 0, 1},
	"green":   {0, 128, 0, 1},
	"blue":    {0, 0, 255, 1},
	"yellow":  {255, 255, 0, 1},
	"cyan":    {0, 255, 255, 1},
	"magenta": {255, 0, 255, 1},
	"white":   {255, 255, 255, 1},
	"black":   {0, 0, 0, 1},
	"gray":    {128, 128, 128, 1},
	"grey":    {128, 128, 128, 1},
	"orange":  {255, 165, 0, 1},
	"purple":  {128, 0, 128, 1},
	"pink":    {255, 192, 203, 1},
	"brown":   {165, 42, 42, 1},
	"lime":    {0, 255, 0, 1},
	"navy":    {0, 0, 128, 1},
	"teal":    {0, 128, 128, 1},
	"silver":  {192, 192, 192, 1},

	"transparent": {},
}

// ParseColor parses a named color or a #rgb / #rrggbb hex color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1}, true
}

// IsVisible reports whether painting with c changes any pixel.
func (c Color) IsVisible() bool { return c.A > 0 }

// RGBA converts c to a premultiplied image/color value.
func (c Color) RGBA() color.RGBA {
	a := c.A
	if a > 1 {
		a = 1
	}
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(a * 255),
	}
}
