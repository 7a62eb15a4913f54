package runtime

import "github.com/aretw0/ribbon/pkg/domain"

// checkpoint is a saved branch point: the state to return to, the transitions
// not yet tried from it (in tie-break order) and the tapes as they were.
type checkpoint struct {
	state   int
	pending []int
	input   *domain.Tape
	outputs []*domain.Tape
}

// checkpointStack is explored last-in first-out; each checkpoint's pending queue first-in first-out.
type checkpointStack struct {
	items []checkpoint
}

func (s *checkpointStack) push(cp checkpoint) {
	s.items = append(s.items, cp)
}

func (s *checkpointStack) len() int { return len(s.items) }

func (s *checkpointStack) clear() { s.items = nil }

// resume dequeues the next untried transition from the most recent checkpoint that still has one.
// Exhausted checkpoints are discarded without restoring anything. The returned tapes are fresh
// clones, so the checkpoint stays intact for its remaining alternatives.
func (s *checkpointStack) resume() (checkpoint, int, bool) {
	for len(s.items) > 0 {
		top := &s.items[len(s.items)-1]
		if len(top.pending) == 0 {
			s.items = s.items[:len(s.items)-1]
			continue
		}

		next := top.pending[0]
		top.pending = top.pending[1:]
		restored := checkpoint{
			state:   top.state,
			input:   top.input.Clone(),
			outputs: cloneTapes(top.outputs),
		}
		if len(top.pending) == 0 {
			s.items = s.items[:len(s.items)-1]
		}
		return restored, next, true
	}
	return checkpoint{}, 0, false
}

func cloneTapes(tapes []*domain.Tape) []*domain.Tape {
	out := make([]*domain.Tape, len(tapes))
	for i, t := range tapes {
		out[i] = t.Clone()
	}
	return out
}
