// Package selection tracks the two-phase marking of the distal and proximal
// junction slices.
package selection

import "fmt"

// Phase represents the selector's position in the marking sequence.
type Phase string

const (
	// PhaseAwaitingDistal is the initial phase; the next mark records the
	// distal junction.
	PhaseAwaitingDistal Phase = "awaiting_distal"
	// PhaseAwaitingProximal follows a distal mark; the next mark records the
	// proximal junction, which must lie strictly after the distal one.
	PhaseAwaitingProximal Phase = "awaiting_proximal"
	// PhaseComplete is terminal; both junctions are recorded.
	PhaseComplete Phase = "complete"
)

// Selection holds the two finalized junction indices (0-based).
type Selection struct {
	Distal   int
	Proximal int
}

// Event reports the outcome of a single Mark call.
type Event struct {
	Accepted bool
	Phase    Phase
	Index    int
	Reason   string
}

// Selector is the marking state machine. Create a fresh one per run; there is
// no way out of PhaseComplete.
type Selector struct {
	phase    Phase
	distal   int
	proximal int
}

// NewSelector returns a selector awaiting the distal mark.
func NewSelector() *Selector {
	return &Selector{phase: PhaseAwaitingDistal}
}

// Phase returns the current phase.
func (s *Selector) Phase() Phase { return s.phase }

// Mark records the given 0-based slice index for the current phase. A distal
// mark is accepted unconditionally; a proximal mark is rejected unless it lies
// strictly after the distal one, in which case the phase does not advance and
// the operator must pick again.
func (s *Selector) Mark(index int) Event {
	switch s.phase {
	case PhaseAwaitingDistal:
		s.distal = index
		s.phase = PhaseAwaitingProximal
		return Event{Accepted: true, Phase: s.phase, Index: index}
	case PhaseAwaitingProximal:
		if index <= s.distal {
			return Event{
				Phase:  s.phase,
				Index:  index,
				Reason: fmt.Sprintf("proximal junction must be after the distal junction (slice %d)", s.distal+1),
			}
		}
		s.proximal = index
		s.phase = PhaseComplete
		return Event{Accepted: true, Phase: s.phase, Index: index}
	default:
		return Event{Phase: s.phase, Index: index, Reason: "both junctions are already marked"}
	}
}

// Selection returns the finalized indices. It reports false until the
// selector reaches PhaseComplete.
func (s *Selector) Selection() (Selection, bool) {
	if s.phase != PhaseComplete {
		return Selection{}, false
	}
	return Selection{Distal: s.distal, Proximal: s.proximal}, true
}
