package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Write is the (symbol, move) pair applied to one writing tape.
type Write struct {
	Symbol Symbol    `json:"symbol"`
	Move   Direction `json:"move"`
}

// Transition is a guarded rule: one read symbol per tape, a move for the input tape
// and one Write per writing tape. It is immutable once built; the graph attaches
// the target state when the transition is appended.
type Transition struct {
	reads    []Symbol
	move     Direction
	writes   []Write
	target   int
	attached bool
}

// NewTransition validates and builds a transition.
// moves[0] is the input tape move, moves[i] pairs with writes[i-1].
func NewTransition(reads, writes []Symbol, moves []Direction) (Transition, error) {
	if len(moves) < 1 {
		return Transition{}, fmt.Errorf("%w: at least one direction is required", ErrTransitionArgs)
	}
	if len(writes) != len(moves)-1 {
		return Transition{}, fmt.Errorf("%w: got %d write symbols for %d writing tapes", ErrTransitionArgs, len(writes), len(moves)-1)
	}
	if len(reads) != len(moves) {
		return Transition{}, fmt.Errorf("%w: got %d read symbols for %d tapes", ErrTransitionArgs, len(reads), len(moves))
	}

	if reads[0] == End && moves[0] == Right {
		return Transition{}, fmt.Errorf("%w: moving right from %q leaves the input tape", ErrIllegalAction, End)
	}
	if reads[0] == Start && moves[0] == Left {
		return Transition{}, fmt.Errorf("%w: moving left from %q leaves the input tape", ErrIllegalAction, Start)
	}

	ws := make([]Write, len(writes))
	for i, w := range writes {
		read, move := reads[i+1], moves[i+1]
		switch {
		case read == Start && move == Left:
			return Transition{}, fmt.Errorf("%w: tape %d moves left from %q", ErrIllegalAction, i+1, Start)
		case read == Start && w != Start:
			return Transition{}, fmt.Errorf("%w: tape %d overwrites %q with %q", ErrIllegalAction, i+1, Start, w)
		case read != Start && w == Start:
			return Transition{}, fmt.Errorf("%w: tape %d writes %q over %q", ErrIllegalAction, i+1, Start, read)
		case w == End:
			return Transition{}, fmt.Errorf("%w: tape %d writes %q", ErrIllegalAction, i+1, End)
		}
		ws[i] = Write{Symbol: w, Move: move}
	}

	rs := make([]Symbol, len(reads))
	copy(rs, reads)
	return Transition{reads: rs, move: moves[0], writes: ws}, nil
}

// ParseTransition builds a transition from single-character tokens and direction letters.
func ParseTransition(reads, writes, moves []string) (Transition, error) {
	rs, err := ParseSymbols(reads)
	if err != nil {
		return Transition{}, err
	}
	ws, err := ParseSymbols(writes)
	if err != nil {
		return Transition{}, err
	}
	ds := make([]Direction, len(moves))
	for i, m := range moves {
		if ds[i], err = ParseDirection(m); err != nil {
			return Transition{}, err
		}
	}
	return NewTransition(rs, ws, ds)
}

// Reads returns the read guard, one symbol per tape.
func (t Transition) Reads() []Symbol {
	out := make([]Symbol, len(t.reads))
	copy(out, t.reads)
	return out
}

// Move returns the input tape move.
func (t Transition) Move() Direction { return t.move }

// Writes returns one (symbol, move) pair per writing tape.
func (t Transition) Writes() []Write {
	out := make([]Write, len(t.writes))
	copy(out, t.writes)
	return out
}

// Ribbons is the number of tapes the transition guards (k + 1).
func (t Transition) Ribbons() int { return len(t.reads) }

// Target returns the target state index once the transition belongs to a graph.
func (t Transition) Target() (int, bool) { return t.target, t.attached }

// Matches reports whether the guard equals the symbols under the heads.
func (t Transition) Matches(under []Symbol) bool {
	if len(under) != len(t.reads) {
		return false
	}
	for i, s := range t.reads {
		if under[i] != s {
			return false
		}
	}
	return true
}

// Equal compares guards, writes and moves. The target is ignored.
func (t Transition) Equal(o Transition) bool {
	if t.move != o.move || len(t.writes) != len(o.writes) || !t.Matches(o.reads) {
		return false
	}
	for i, w := range t.writes {
		if o.writes[i] != w {
			return false
		}
	}
	return true
}

func (t Transition) withTarget(to int) Transition {
	t.target = to
	t.attached = true
	return t
}

// String renders "a_0,...,a_k -> D_0,b_1,D_1,...,b_k,D_k".
func (t Transition) String() string {
	var sb strings.Builder
	sb.WriteString(FormatSymbols(t.reads, ","))
	sb.WriteString(" -> ")
	sb.WriteString(t.move.String())
	for _, w := range t.writes {
		sb.WriteString("," + w.Symbol.String() + "," + w.Move.String())
	}
	return sb.String()
}

type transitionJSON struct {
	Read   []Symbol  `json:"read"`
	Move   Direction `json:"move"`
	Write  []Write   `json:"write"`
	Target *int      `json:"target,omitempty"`
}

func (t Transition) MarshalJSON() ([]byte, error) {
	raw := transitionJSON{Read: t.reads, Move: t.move, Write: t.writes}
	if raw.Read == nil {
		raw.Read = []Symbol{}
	}
	if raw.Write == nil {
		raw.Write = []Write{}
	}
	if t.attached {
		target := t.target
		raw.Target = &target
	}
	return json.Marshal(raw)
}

func (t *Transition) UnmarshalJSON(b []byte) error {
	var raw transitionJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	writes := make([]Symbol, len(raw.Write))
	moves := make([]Direction, 0, len(raw.Write)+1)
	moves = append(moves, raw.Move)
	for i, w := range raw.Write {
		writes[i] = w.Symbol
		moves = append(moves, w.Move)
	}
	parsed, err := NewTransition(raw.Read, writes, moves)
	if err != nil {
		return err
	}
	if raw.Target != nil {
		parsed = parsed.withTarget(*raw.Target)
	}
	*t = parsed
	return nil
}
