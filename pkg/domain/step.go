package domain

import (
	"fmt"
	"strings"
)

// TakenTransition identifies the transition applied to reach a step.
type TakenTransition struct {
	// From is the state the transition left.
	From int `json:"from"`
	// Index is the transition's position in From's list.
	Index      int        `json:"index"`
	Transition Transition `json:"transition"`
}

// Step is an immutable snapshot of an engine after one call to Next.
type Step struct {
	State     int    `json:"state"`
	StateName string `json:"state_name"`

	// Transition is nil on the initial step.
	Transition *TakenTransition `json:"transition,omitempty"`

	Input   TapeSnapshot   `json:"input"`
	Outputs []TapeSnapshot `json:"outputs"`

	// BacktrackedTo is set when the step resumed from a checkpoint at that state.
	BacktrackedTo *int `json:"backtracked_to,omitempty"`
}

// Tapes returns the input snapshot followed by the writing tape snapshots.
func (s *Step) Tapes() []TapeSnapshot {
	out := make([]TapeSnapshot, 0, len(s.Outputs)+1)
	out = append(out, s.Input)
	return append(out, s.Outputs...)
}

func (s *Step) String() string {
	var sb strings.Builder
	if s.BacktrackedTo != nil {
		fmt.Fprintf(&sb, "<backtrack to %d> ", *s.BacktrackedTo)
	}
	if s.Transition != nil {
		fmt.Fprintf(&sb, "%d --(%s)--> ", s.Transition.From, s.Transition.Transition)
	}
	fmt.Fprintf(&sb, "%s", s.StateName)
	for _, t := range s.Tapes() {
		sb.WriteString(" | " + t.String())
	}
	return sb.String()
}

func (s Step) clone() Step {
	out := s
	out.Input = s.Input.clone()
	out.Outputs = make([]TapeSnapshot, len(s.Outputs))
	for i, o := range s.Outputs {
		out.Outputs[i] = o.clone()
	}
	if s.Transition != nil {
		taken := *s.Transition
		out.Transition = &taken
	}
	if s.BacktrackedTo != nil {
		to := *s.BacktrackedTo
		out.BacktrackedTo = &to
	}
	return out
}
