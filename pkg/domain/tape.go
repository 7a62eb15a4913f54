package domain

import (
	"fmt"
	"strings"
)

// Tape is a sequence of cells with a read/write head.
// The input tape is bounded by Start and End; writing tapes grow to the right with Blank.
type Tape struct {
	cells   []Symbol
	head    int
	bounded bool
}

// NewInputTape returns a bounded tape seeded with [Start, End].
func NewInputTape() *Tape {
	return &Tape{cells: []Symbol{Start, End}, bounded: true}
}

// NewOutputTape returns an unbounded tape seeded with [Start, Blank].
func NewOutputTape() *Tape {
	return &Tape{cells: []Symbol{Start, Blank}}
}

// Bounded reports whether the tape is the input variant.
func (t *Tape) Bounded() bool { return t.bounded }

// Feed reseeds an input tape with [Start] + word + [End] and rewinds the head.
func (t *Tape) Feed(word []Symbol) error {
	if !t.bounded {
		return fmt.Errorf("%w: only the input tape can be fed", ErrIllegalAction)
	}
	for i, s := range word {
		if s.IsMarker() {
			return fmt.Errorf("%w: word contains reserved symbol %q at %d", ErrIllegalAction, s, i)
		}
	}
	cells := make([]Symbol, 0, len(word)+2)
	cells = append(cells, Start)
	cells = append(cells, word...)
	cells = append(cells, End)
	t.cells = cells
	t.head = 0
	return nil
}

// Read returns the symbol under the head.
func (t *Tape) Read() Symbol {
	return t.cells[t.head]
}

// TryApply writes replacement under the head and moves it, but only if the head reads expected.
// A guard mismatch returns false without touching the tape. Every failure leaves the tape unchanged.
func (t *Tape) TryApply(expected, replacement Symbol, dir Direction) (bool, error) {
	current := t.Read()
	if current != expected {
		return false, nil
	}
	if err := checkReplacement(current, replacement); err != nil {
		return false, err
	}

	next := t.head + dir.Delta()
	grow := false
	switch {
	case next < 0:
		return false, outOfRange(RangeRibbon, next, len(t.cells))
	case next >= len(t.cells):
		if t.bounded {
			return false, outOfRange(RangeRibbon, next, len(t.cells))
		}
		grow = true
	}

	t.cells[t.head] = replacement
	if grow {
		t.cells = append(t.cells, Blank)
	}
	t.head = next
	return true, nil
}

func checkReplacement(current, replacement Symbol) error {
	if current == replacement {
		return nil
	}
	switch {
	case current == Start:
		return fmt.Errorf("%w: cannot overwrite %q with %q", ErrIllegalAction, current, replacement)
	case current == End:
		return fmt.Errorf("%w: cannot overwrite %q with %q", ErrIllegalAction, current, replacement)
	case replacement == Start || replacement == End:
		return fmt.Errorf("%w: cannot write marker %q over %q", ErrIllegalAction, replacement, current)
	}
	return nil
}

// Contents returns a copy of the cells.
func (t *Tape) Contents() []Symbol {
	out := make([]Symbol, len(t.cells))
	copy(out, t.cells)
	return out
}

// Head returns the head position.
func (t *Tape) Head() int { return t.head }

// Len returns the number of cells.
func (t *Tape) Len() int { return len(t.cells) }

// Clone returns an independent copy of the tape.
func (t *Tape) Clone() *Tape {
	return &Tape{cells: t.Contents(), head: t.head, bounded: t.bounded}
}

// Snapshot captures the tape for display or storage.
func (t *Tape) Snapshot() TapeSnapshot {
	return TapeSnapshot{Cells: t.Contents(), Head: t.head}
}

func (t *Tape) String() string {
	return t.Snapshot().String()
}

// TapeSnapshot is a frozen copy of a tape.
type TapeSnapshot struct {
	Cells []Symbol `json:"cells"`
	Head  int      `json:"head"`
}

// String renders the cells with the head cell in brackets, e.g. "ç[a]b$".
func (s TapeSnapshot) String() string {
	var sb strings.Builder
	for i, c := range s.Cells {
		if i == s.Head {
			sb.WriteString("[" + c.String() + "]")
			continue
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

func (s TapeSnapshot) clone() TapeSnapshot {
	cells := make([]Symbol, len(s.Cells))
	copy(cells, s.Cells)
	return TapeSnapshot{Cells: cells, Head: s.Head}
}
