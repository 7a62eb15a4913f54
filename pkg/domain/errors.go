package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalAction is returned when an operation would break a structural invariant:
	// removing a reserved state, overwriting a marker, feeding an invalid word.
	ErrIllegalAction = errors.New("illegal action")

	// ErrOutOfRange is the kind shared by every RangeError.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnknownState is returned when a state name lookup misses.
	ErrUnknownState = errors.New("unknown state")

	// ErrIncompatibleTransition is returned when a transition does not match the graph's ribbon count.
	ErrIncompatibleTransition = errors.New("incompatible transition")

	// ErrTransitionArgs is returned when a transition is built from mismatched vectors.
	ErrTransitionArgs = errors.New("invalid transition arguments")

	// ErrRunAborted is returned by an engine whose previous step failed mid-application.
	ErrRunAborted = errors.New("run aborted by a previous failure")

	// ErrTraceNotFound is returned when a trace ID cannot be found in a store.
	ErrTraceNotFound = errors.New("trace not found")
)

// RangeTarget names what an out-of-range index was pointing into.
type RangeTarget string

const (
	RangeRibbon     RangeTarget = "ribbon"
	RangeState      RangeTarget = "state"
	RangeTransition RangeTarget = "transition"
)

// RangeError reports an index beyond valid bounds.
// For RangeRibbon raised while stepping, Index is the head position the move would have reached.
type RangeError struct {
	Target RangeTarget
	Index  int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Target, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// UnknownStateError carries the name that missed.
type UnknownStateError struct {
	Name string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q", e.Name)
}

func (e *UnknownStateError) Unwrap() error { return ErrUnknownState }

func outOfRange(target RangeTarget, index, length int) error {
	return &RangeError{Target: target, Index: index, Len: length}
}
