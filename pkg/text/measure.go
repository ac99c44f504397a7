// Package text measures and wraps text for leaf content nodes.
//
// The layout engine never breaks text itself; a text leaf wraps its own
// lines to the width it is given and reports the resulting height.
package text

import (
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace is used whenever no face is configured. It needs no font files.
var DefaultFace font.Face = basicfont.Face7x13

// LoadFace loads a TrueType face from disk at the given point size.
func LoadFace(path string, points float64) (font.Face, error) {
	return gg.LoadFontFace(path, points)
}

func orDefault(face font.Face) font.Face {
	if face == nil {
		return DefaultFace
	}
	return face
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// LineHeight returns the recommended distance between baselines.
func LineHeight(face font.Face) float64 {
	m := orDefault(face).Metrics()
	if m.Height > 0 {
		return toFloat(m.Height)
	}
	return toFloat(m.Ascent + m.Descent)
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent(face font.Face) float64 {
	return toFloat(orDefault(face).Metrics().Ascent)
}

// Measure returns the advance width and line height of s.
func Measure(face font.Face, s string) (width, height float64) {
	face = orDefault(face)
	return toFloat(font.MeasureString(face, s)), LineHeight(face)
}

// Wrap breaks s into lines no wider than maxWidth. Explicit newlines start a
// new line. A single word wider than maxWidth is kept on its own line.
func Wrap(face font.Face, s string, maxWidth float64) []string {
	face = orDefault(face)
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(face, para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(face font.Face, para string, maxWidth float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 1)
	currentLine := ""
	for _, word := range words {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if toFloat(font.MeasureString(face, testLine)) <= maxWidth || currentLine == "" {
			currentLine = testLine
			continue
		}

		// Word doesn't fit, start new line
		lines = append(lines, currentLine)
		currentLine = word
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}
