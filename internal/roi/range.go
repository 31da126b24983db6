package roi

import "fmt"

// Range is a half-open [Start, End) span of 0-based slice indices. It is
// recomputed from the selection on every run and never persisted.
type Range struct {
	Start int
	End   int
}

// InBounds reports whether the range fits a stack of n slices. An empty range
// (Start == End) inside the stack is in bounds and copies zero files.
func (r Range) InBounds(n int) bool {
	return r.Start >= 0 && r.Start < n && r.End <= n
}

// Width returns the number of slices the range covers.
func (r Range) Width() int { return r.End - r.Start }

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
