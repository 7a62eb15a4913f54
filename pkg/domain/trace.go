package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Trace is the recorded sequence of steps of one run.
type Trace struct {
	ID        string    `json:"id"`
	Machine   string    `json:"machine,omitempty"`
	Word      string    `json:"word"`
	Status    Status    `json:"status"`
	Steps     []Step    `json:"steps"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTraceID returns a sortable unique ID.
func NewTraceID() string {
	return ulid.Make().String()
}

// NewTrace starts an empty trace for word.
func NewTrace(word string) *Trace {
	return &Trace{
		ID:        NewTraceID(),
		Word:      word,
		Status:    StatusRunning,
		Steps:     []Step{},
		CreatedAt: time.Now().UTC(),
	}
}

// Last returns the final recorded step, or nil.
func (t *Trace) Last() *Step {
	if len(t.Steps) == 0 {
		return nil
	}
	return &t.Steps[len(t.Steps)-1]
}

// Backtracks counts the steps that resumed from a checkpoint.
func (t *Trace) Backtracks() int {
	n := 0
	for _, s := range t.Steps {
		if s.BacktrackedTo != nil {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the trace.
func (t *Trace) Clone() *Trace {
	out := *t
	out.Steps = make([]Step, len(t.Steps))
	for i, s := range t.Steps {
		out.Steps[i] = s.clone()
	}
	return &out
}
