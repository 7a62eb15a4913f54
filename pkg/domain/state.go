package domain

import "fmt"

// StateKind classifies a state.
type StateKind string

const (
	KindNormal    StateKind = "normal"
	KindAccepting StateKind = "accepting"
	KindRejecting StateKind = "rejecting"
)

// Reserved state names and their fixed positions.
const (
	InitialState   = "i"
	AcceptingState = "a"
	RejectingState = "r"

	InitialIndex   = 0
	AcceptingIndex = 1
	RejectingIndex = 2
)

// State is a named node with its ordered outgoing transitions.
// The order of transitions is the tie-break order when several match.
type State struct {
	name        string
	kind        StateKind
	transitions []Transition
}

func (s *State) Name() string { return s.name }

func (s *State) Kind() StateKind { return s.kind }

// Transitions returns a copy of the outgoing transitions.
func (s *State) Transitions() []Transition {
	out := make([]Transition, len(s.transitions))
	copy(out, s.transitions)
	return out
}

// NumTransitions returns the number of outgoing transitions.
func (s *State) NumTransitions() int { return len(s.transitions) }

// Transition returns the i-th outgoing transition.
func (s *State) Transition(i int) (Transition, error) {
	if i < 0 || i >= len(s.transitions) {
		return Transition{}, outOfRange(RangeTransition, i, len(s.transitions))
	}
	return s.transitions[i], nil
}

// Matching returns the indices of the transitions whose guard equals under, in order.
func (s *State) Matching(under []Symbol) []int {
	var out []int
	for i, t := range s.transitions {
		if t.Matches(under) {
			out = append(out, i)
		}
	}
	return out
}

func (s *State) String() string {
	return fmt.Sprintf("%s(%s, %d transitions)", s.name, s.kind, len(s.transitions))
}
