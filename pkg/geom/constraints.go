package geom

import (
	"fmt"
	"math"
)

// Constraints are the minimum/maximum width and height a node may occupy.
// MaxHeight may be Inf during the unconstrained measurement pass.
//
// Constraints are values: the With* helpers return modified copies.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that admit exactly the given size.
func Tight(s Size) Constraints {
	return Constraints{MinWidth: s.Width, MaxWidth: s.Width, MinHeight: s.Height, MaxHeight: s.Height}
}

// Loose returns constraints bounded above by the given size, with zero minimums.
func Loose(s Size) Constraints {
	return Constraints{MaxWidth: s.Width, MaxHeight: s.Height}
}

// Unbounded keeps the width bounds and lifts the height limit.
func (c Constraints) Unbounded() Constraints {
	c.MinHeight = 0
	c.MaxHeight = Inf
	return c
}

// WithMaxHeight returns a copy with a new maximum height. The minimum is
// lowered if it would exceed the new maximum.
func (c Constraints) WithMaxHeight(h float64) Constraints {
	c.MaxHeight = h
	if c.MinHeight > h {
		c.MinHeight = h
	}
	return c
}

// WithMaxWidth returns a copy with a new maximum width.
func (c Constraints) WithMaxWidth(w float64) Constraints {
	c.MaxWidth = w
	if c.MinWidth > w {
		c.MinWidth = w
	}
	return c
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// Constrain clamps s into the constraint box. Height is never clamped
// downward: a node taller than MaxHeight overflows and the caller decides
// what to do with it.
func (c Constraints) Constrain(s Size) Size {
	w := math.Max(c.MinWidth, s.Width)
	if c.HasBoundedWidth() {
		w = math.Min(w, c.MaxWidth)
	}
	h := math.Max(c.MinHeight, s.Height)
	return Size{Width: w, Height: h}
}

// Validate checks that all bounds are non-negative and min <= max.
func (c Constraints) Validate() error {
	if c.MinWidth < 0 || c.MinHeight < 0 || c.MaxWidth < 0 || c.MaxHeight < 0 {
		return fmt.Errorf("negative constraint: %+v", c)
	}
	if c.MinWidth > c.MaxWidth {
		return fmt.Errorf("min width %g exceeds max width %g", c.MinWidth, c.MaxWidth)
	}
	if c.MinHeight > c.MaxHeight {
		return fmt.Errorf("min height %g exceeds max height %g", c.MinHeight, c.MaxHeight)
	}
	return nil
}
