package domain

import "fmt"

// Graph is the mutable set of states of a machine with k writing tapes.
// States i, a and r always exist at positions 0, 1 and 2.
// Every mutation is validated first and applied whole, so a failed call leaves the graph untouched.
type Graph struct {
	k      int
	states []*State
	index  map[string]int
}

// NewGraph creates a graph for k writing tapes with the three reserved states.
func NewGraph(k int) (*Graph, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: a machine needs at least one writing tape, got %d", ErrIllegalAction, k)
	}
	g := &Graph{
		k:     k,
		index: make(map[string]int),
	}
	g.push(InitialState, KindNormal)
	g.push(AcceptingState, KindAccepting)
	g.push(RejectingState, KindRejecting)
	return g, nil
}

func (g *Graph) push(name string, kind StateKind) int {
	g.states = append(g.states, &State{name: name, kind: kind})
	idx := len(g.states) - 1
	g.index[name] = idx
	return idx
}

// K returns the number of writing tapes.
func (g *Graph) K() int { return g.k }

// Len returns the number of states.
func (g *Graph) Len() int { return len(g.states) }

// AddState returns the index of the named state, appending a Normal state if it does not exist.
func (g *Graph) AddState(name string) int {
	if idx, ok := g.index[name]; ok {
		return idx
	}
	return g.push(name, KindNormal)
}

// AddStateChecked is AddState with a name check.
func (g *Graph) AddStateChecked(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: state name cannot be empty", ErrIllegalAction)
	}
	return g.AddState(name), nil
}

// State returns the state at idx.
func (g *Graph) State(idx int) (*State, error) {
	if idx < 0 || idx >= len(g.states) {
		return nil, outOfRange(RangeState, idx, len(g.states))
	}
	return g.states[idx], nil
}

// Index returns the position of the named state.
func (g *Graph) Index(name string) (int, error) {
	idx, ok := g.index[name]
	if !ok {
		return 0, &UnknownStateError{Name: name}
	}
	return idx, nil
}

// StateByName returns the named state and its position.
func (g *Graph) StateByName(name string) (int, *State, error) {
	idx, err := g.Index(name)
	if err != nil {
		return 0, nil, err
	}
	return idx, g.states[idx], nil
}

// States returns the states in index order.
func (g *Graph) States() []*State {
	out := make([]*State, len(g.states))
	copy(out, g.states)
	return out
}

// AppendTransition attaches t to the target and appends it to from's transitions.
// Existing transitions are never replaced, so several rules may share a guard.
func (g *Graph) AppendTransition(from int, t Transition, to int) error {
	if from < 0 || from >= len(g.states) {
		return outOfRange(RangeState, from, len(g.states))
	}
	if to < 0 || to >= len(g.states) {
		return outOfRange(RangeState, to, len(g.states))
	}
	if len(t.writes) != g.k || len(t.reads) != g.k+1 {
		return fmt.Errorf("%w: transition %s drives %d writing tapes, machine has %d",
			ErrIncompatibleTransition, t, len(t.writes), g.k)
	}
	src := g.states[from]
	src.transitions = append(src.transitions, t.withTarget(to))
	return nil
}

// TransitionsBetween returns the transitions of from that target to, in insertion order.
func (g *Graph) TransitionsBetween(from, to int) ([]Transition, error) {
	if from < 0 || from >= len(g.states) {
		return nil, outOfRange(RangeState, from, len(g.states))
	}
	if to < 0 || to >= len(g.states) {
		return nil, outOfRange(RangeState, to, len(g.states))
	}
	var out []Transition
	for _, t := range g.states[from].transitions {
		if t.target == to {
			out = append(out, t)
		}
	}
	return out, nil
}

// RemoveTransitions drops every transition from -> to and returns how many were removed.
func (g *Graph) RemoveTransitions(from, to int) (int, error) {
	if from < 0 || from >= len(g.states) {
		return 0, outOfRange(RangeState, from, len(g.states))
	}
	if to < 0 || to >= len(g.states) {
		return 0, outOfRange(RangeState, to, len(g.states))
	}
	src := g.states[from]
	kept := src.transitions[:0:0]
	for _, t := range src.transitions {
		if t.target != to {
			kept = append(kept, t)
		}
	}
	removed := len(src.transitions) - len(kept)
	src.transitions = kept
	return removed, nil
}

// RemoveState deletes the state at idx. Every later state shifts down by one,
// targets are renumbered and transitions into the removed state are dropped.
func (g *Graph) RemoveState(idx int) error {
	if idx < 0 || idx >= len(g.states) {
		return outOfRange(RangeState, idx, len(g.states))
	}
	if idx <= RejectingIndex {
		return fmt.Errorf("%w: state %q is reserved", ErrIllegalAction, g.states[idx].name)
	}

	removed := g.states[idx]
	states := make([]*State, 0, len(g.states)-1)
	states = append(states, g.states[:idx]...)
	states = append(states, g.states[idx+1:]...)

	for _, s := range states {
		kept := make([]Transition, 0, len(s.transitions))
		for _, t := range s.transitions {
			switch {
			case t.target == idx:
				continue
			case t.target > idx:
				t.target--
			}
			kept = append(kept, t)
		}
		s.transitions = kept
	}

	delete(g.index, removed.name)
	for name, i := range g.index {
		if i > idx {
			g.index[name] = i - 1
		}
	}
	g.states = states
	return nil
}

// RemoveStateByName deletes the named state.
func (g *Graph) RemoveStateByName(name string) error {
	idx, err := g.Index(name)
	if err != nil {
		return err
	}
	return g.RemoveState(idx)
}
