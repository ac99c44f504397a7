package layout

import "fmt"

// SpanningState is the progress of a SpanningContainer.
type SpanningState struct {
	// Consumed is the vertical extent of the child rendered on prior pages.
	Consumed float64
	// Complete is set once the whole child has been rendered.
	Complete bool
}

func (s *SpanningState) Apply(other State) error {
	o, ok := other.(*SpanningState)
	if !ok || o == nil {
		return mismatch("*SpanningState", other)
	}
	*s = *o
	return nil
}

func (s *SpanningState) Clone() State {
	c := *s
	return &c
}

func (s *SpanningState) Equal(other State) bool {
	o, ok := other.(*SpanningState)
	return ok && o != nil && *s == *o
}

func (s *SpanningState) String() string {
	return fmt.Sprintf("SpanningState{consumed=%g complete=%t}", s.Consumed, s.Complete)
}

// FlowState is the progress of a FlowGroup.
//
// Wrapped is non-nil exactly when child Next-1 is a spanner that still has
// unrendered content; it is owned by the group and never shared.
type FlowState struct {
	// Next is the index of the first child not yet placed.
	Next int
	// Wrapped is the spanner breaking child Next-1, if still in progress.
	Wrapped Spanner
	// WrappedState is the saved state of Wrapped.
	WrappedState State
	// Children holds the saved state of every spanning child from the
	// current one on, keyed by child index.
	Children map[int]State
}

func (s *FlowState) Apply(other State) error {
	o, ok := other.(*FlowState)
	if !ok || o == nil {
		return mismatch("*FlowState", other)
	}
	s.Next = o.Next
	s.Wrapped = o.Wrapped
	s.WrappedState = cloneState(o.WrappedState)
	s.Children = cloneChildren(o.Children)
	return nil
}

func (s *FlowState) Clone() State {
	return &FlowState{
		Next:         s.Next,
		Wrapped:      s.Wrapped,
		WrappedState: cloneState(s.WrappedState),
		Children:     cloneChildren(s.Children),
	}
}

func (s *FlowState) Equal(other State) bool {
	o, ok := other.(*FlowState)
	if !ok || o == nil {
		return false
	}
	if s.Next != o.Next || s.Wrapped != o.Wrapped || !statesEqual(s.WrappedState, o.WrappedState) {
		return false
	}
	if len(s.Children) != len(o.Children) {
		return false
	}
	for i, st := range s.Children {
		if !statesEqual(st, o.Children[i]) {
			return false
		}
	}
	return true
}

func (s *FlowState) String() string {
	if s.Wrapped == nil {
		return fmt.Sprintf("FlowState{next=%d}", s.Next)
	}
	return fmt.Sprintf("FlowState{next=%d wrapped=%v}", s.Next, s.WrappedState)
}

func cloneState(s State) State {
	if s == nil {
		return nil
	}
	return s.Clone()
}

func cloneChildren(m map[int]State) map[int]State {
	if m == nil {
		return nil
	}
	c := make(map[int]State, len(m))
	for i, st := range m {
		c[i] = cloneState(st)
	}
	return c
}

func statesEqual(a, b State) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
