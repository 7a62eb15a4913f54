package tui

import (
	"io"
	"os"
	"strings"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TapeRenderer draws tapes and steps for a given output.
// On colour profiles the head cell is highlighted; on plain output it is bracketed.
type TapeRenderer struct {
	out *termenv.Output
}

// NewTapeRenderer detects the colour profile of w.
func NewTapeRenderer(w io.Writer, opts ...termenv.OutputOption) *TapeRenderer {
	return &TapeRenderer{out: termenv.NewOutput(w, opts...)}
}

func (r *TapeRenderer) plain() bool {
	return r.out.Profile == termenv.Ascii
}

// Tape renders one snapshot.
func (r *TapeRenderer) Tape(s domain.TapeSnapshot) string {
	if r.plain() {
		return s.String()
	}
	var sb strings.Builder
	for i, c := range s.Cells {
		cell := r.out.String(c.String())
		switch {
		case i == s.Head:
			cell = cell.Reverse().Bold().Foreground(r.out.Color("#fbbf24"))
		case c.IsMarker():
			cell = cell.Faint()
		}
		sb.WriteString(cell.String())
	}
	return sb.String()
}

// Step renders a step on one line: optional backtrack marker, rule taken, state, tapes.
func (r *TapeRenderer) Step(s *domain.Step) string {
	if r.plain() {
		return s.String()
	}
	var sb strings.Builder
	if s.BacktrackedTo != nil {
		sb.WriteString(r.out.String("↩ ").Foreground(r.out.Color("#fb7185")).String())
	}
	if s.Transition != nil {
		sb.WriteString(r.out.String(s.Transition.Transition.String()).Faint().String())
		sb.WriteString(" → ")
	}
	sb.WriteString(r.out.String(s.StateName).Bold().String())
	for _, t := range s.Tapes() {
		sb.WriteString("  " + r.Tape(t))
	}
	return sb.String()
}

// Status renders the final status with a colour matching its outcome.
func (r *TapeRenderer) Status(status domain.Status) string {
	if r.plain() {
		return string(status)
	}
	color := "#a3a3a3"
	switch status {
	case domain.StatusAccepted:
		color = "#4ade80"
	case domain.StatusRejected:
		color = "#fbbf24"
	case domain.StatusFailed:
		color = "#f87171"
	}
	return r.out.String(string(status)).Bold().Foreground(r.out.Color(color)).String()
}
