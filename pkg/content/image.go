package content

import (
	"image"
	"math"

	"folio/pkg/geom"
	"folio/pkg/images"
	"folio/pkg/paint"
)

// Image draws a raster image. With both Width and Height zero the image is
// drawn at its natural size; with one of them set the other follows the
// aspect ratio. Images wider than the available width are scaled down.
type Image struct {
	Width  float64
	Height float64

	img  image.Image
	size geom.Size
}

// NewImage wraps an in-memory image.
func NewImage(img image.Image, width, height float64) *Image {
	return &Image{img: img, Width: width, Height: height}
}

// LoadImage creates an image node from a file path or data URI.
func LoadImage(src string, width, height float64) (*Image, error) {
	img, err := images.Load(src)
	if err != nil {
		return nil, err
	}
	return NewImage(img, width, height), nil
}

func (im *Image) natural() geom.Size {
	b := im.img.Bounds()
	nw, nh := float64(b.Dx()), float64(b.Dy())
	switch {
	case im.Width > 0 && im.Height > 0:
		return geom.Size{Width: im.Width, Height: im.Height}
	case im.Width > 0 && nw > 0:
		return geom.Size{Width: im.Width, Height: nh * im.Width / nw}
	case im.Height > 0 && nh > 0:
		return geom.Size{Width: nw * im.Height / nh, Height: im.Height}
	}
	return geom.Size{Width: nw, Height: nh}
}

func (im *Image) Measure(c geom.Constraints) geom.Size {
	s := im.natural()
	if c.HasBoundedWidth() && s.Width > c.MaxWidth && s.Width > 0 {
		scale := c.MaxWidth / s.Width
		s = geom.Size{Width: c.MaxWidth, Height: math.Round(s.Height*scale*1000) / 1000}
	}
	return s
}

func (im *Image) Layout(c geom.Constraints) (geom.Size, error) {
	im.size = im.Measure(c)
	return im.size, nil
}

func (im *Image) Paint(s paint.Surface) {
	s.DrawImage(im.img, geom.NewRect(im.size))
}
