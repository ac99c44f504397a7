package layout

import (
	"fmt"
	"strings"
)

// Align is the cross-axis (horizontal) placement of a child in a stack.
type Align int

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	// AlignStretch places the child at the left edge; filling the width is
	// the child's own responsibility.
	AlignStretch
)

var alignNames = [...]string{"start", "end", "center", "stretch"}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Align(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlign parses start, end, center or stretch (left and right are
// accepted as aliases for start and end).
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "left", "":
		return AlignStart, nil
	case "end", "right":
		return AlignEnd, nil
	case "center", "middle":
		return AlignCenter, nil
	case "stretch":
		return AlignStretch, nil
	}
	return AlignStart, fmt.Errorf("unknown alignment %q", s)
}

// offset returns the x position of a child of the given width inside
// availableWidth.
func (a Align) offset(childWidth, availableWidth float64) float64 {
	switch a {
	case AlignEnd:
		return availableWidth - childWidth
	case AlignCenter:
		return (availableWidth - childWidth) / 2
	default:
		return 0
	}
}
