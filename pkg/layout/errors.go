package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrOversizeWithoutBreaking is returned when content taller than a
	// page reaches the top of an empty page and automatic breaking is off.
	ErrOversizeWithoutBreaking = errors.New("content taller than page and breaking is disabled")

	// ErrStateMismatch is returned when a State is applied to a node of a
	// different kind.
	ErrStateMismatch = errors.New("pagination state of a different kind")
)

// OversizeError describes content that cannot be placed on any page.
type OversizeError struct {
	Index      int // child index within its group, -1 for a document root
	Height     float64
	PageHeight float64
}

func (e *OversizeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("root content height %g exceeds page height %g", e.Height, e.PageHeight)
	}
	return fmt.Sprintf("child %d height %g exceeds page height %g", e.Index, e.Height, e.PageHeight)
}

func (e *OversizeError) Unwrap() error { return ErrOversizeWithoutBreaking }

func mismatch(want string, got State) error {
	return fmt.Errorf("%w: want %s, got %T", ErrStateMismatch, want, got)
}
