// Package paint defines the drawing surface the layout engine paints onto,
// together with a gg-backed raster surface and a recording surface.
//
// Surfaces use the engine's bottom-left coordinate frame. Push and Pop
// save and restore both the transform and the clip; every Push must be
// matched by a Pop on all exit paths.
package paint

import (
	"image"

	"golang.org/x/image/font"

	"folio/pkg/geom"
)

// Surface is the set of drawing primitives layout nodes paint with.
type Surface interface {
	// Push saves the current transform and clip.
	Push()
	// Pop restores the transform and clip saved by the matching Push.
	Pop()
	// Translate moves the local origin by dx, dy.
	Translate(dx, dy float64)
	// ClipRect intersects the current clip with r (local coordinates).
	ClipRect(r geom.Rect)
	FillRect(r geom.Rect, c Color)
	StrokeRect(r geom.Rect, c Color, width float64)
	// DrawText draws s with its baseline starting at x, baseline.
	DrawText(s string, x, baseline float64, style TextStyle)
	// DrawImage scales img into r.
	DrawImage(img image.Image, r geom.Rect)
}

// TextStyle carries the face and color used by DrawText.
type TextStyle struct {
	Face  font.Face
	Color Color
}
