// Package visualtest compares rendered pages pixel by pixel.
package visualtest

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Result contains the results of an image comparison
type Result struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // Max color channel difference found
}

// Options configures the image comparison
type Options struct {
	// Tolerance: maximum allowed difference per color channel (0-255)
	Tolerance int

	// FuzzyRadius: if > 0, a pixel matches if it matches any pixel within this radius
	FuzzyRadius int

	// MaxDifferentPercent: if > 0, pass if the percentage of different pixels is <= this value
	MaxDifferentPercent float64

	// DiffPath: if set, a diff image highlighting differences is written here on mismatch
	DiffPath string
}

// DefaultOptions returns an exact comparison.
func DefaultOptions() Options {
	return Options{}
}

// CompareFiles loads two PNG files and compares them.
func CompareFiles(actualPath, expectedPath string, opts Options) (*Result, error) {
	actual, err := gg.LoadPNG(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load actual image: %w", err)
	}
	expected, err := gg.LoadPNG(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load expected image: %w", err)
	}
	return Compare(actual, expected, opts)
}

// Compare compares two images pixel by pixel.
func Compare(actual, expected image.Image, opts Options) (*Result, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return &Result{}, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", bounds, expected.Bounds())
	}

	result := &Result{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
	}

	var diffImg *image.RGBA
	if opts.DiffPath != "" {
		diffImg = image.NewRGBA(bounds)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			diff := channelDiff(actual.At(x, y), expected.At(x, y))
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}

			matched := diff <= opts.Tolerance
			if !matched && opts.FuzzyRadius > 0 {
				matched = fuzzyMatch(actual, expected, x, y, opts.FuzzyRadius, opts.Tolerance)
			}
			if !matched {
				result.Match = false
				result.DifferentPixels++
			}

			if diffImg != nil {
				if matched {
					r, _, _, _ := actual.At(x, y).RGBA()
					gray := uint8(r >> 8)
					diffImg.Set(x, y, color.RGBA{gray, gray, gray, 255})
				} else {
					diffImg.Set(x, y, color.RGBA{255, 0, 0, 255})
				}
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 && result.TotalPixels > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	if diffImg != nil && !result.Match {
		if err := gg.SavePNG(opts.DiffPath, diffImg); err != nil {
			return result, fmt.Errorf("failed to save diff image: %w", err)
		}
	}

	return result, nil
}

// channelDiff returns the largest 8-bit channel difference between a and b.
func channelDiff(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return max(
		absInt(int(ar>>8)-int(br>>8)),
		absInt(int(ag>>8)-int(bg>>8)),
		absInt(int(ab>>8)-int(bb>>8)),
		absInt(int(aa>>8)-int(ba>>8)),
	)
}

// fuzzyMatch checks if the actual pixel at (x, y) matches any expected pixel within radius
func fuzzyMatch(actual, expected image.Image, x, y, radius, tolerance int) bool {
	bounds := actual.Bounds()
	want := actual.At(x, y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := image.Point{X: x + dx, Y: y + dy}
			if !p.In(bounds) {
				continue
			}
			if channelDiff(want, expected.At(p.X, p.Y)) <= tolerance {
				return true
			}
		}
	}
	return false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
