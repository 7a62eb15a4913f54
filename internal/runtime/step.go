package runtime

import (
	"fmt"

	"github.com/aretw0/ribbon/pkg/domain"
)

// Next produces the next step of the run.
// It returns (nil, nil) once the sequence has ended: the accepting state was reached,
// or a dead end was hit with no checkpoint left to resume.
// An error means a tape could not apply the chosen transition; the run is over and
// every later call returns ErrRunAborted until the engine is reset.
func (e *Engine) Next() (*domain.Step, error) {
	if e.failed != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRunAborted, e.failed)
	}
	if e.halted {
		return nil, nil
	}
	if !e.started {
		e.started = true
		return e.record(nil, nil)
	}

	state, err := e.graph.State(e.current)
	if err != nil {
		return nil, e.fail(err)
	}
	if state.Kind() == domain.KindAccepting {
		e.halt()
		return nil, nil
	}

	var matches []int
	if state.Kind() != domain.KindRejecting {
		matches = state.Matching(e.underHeads())
	}

	from := e.current
	var backtracked *int
	var chosen int

	switch {
	case len(matches) == 0:
		cp, idx, ok := e.checkpoints.resume()
		if !ok {
			e.halt()
			return nil, nil
		}
		e.current = cp.state
		e.input = cp.input
		e.outputs = cp.outputs
		from, chosen = cp.state, idx
		backtracked = &from

		if state, err = e.graph.State(e.current); err != nil {
			return nil, e.fail(err)
		}
		e.logger.Debug("backtracking",
			"state", state.Name(),
			"transition", chosen,
			"depth", e.checkpoints.len(),
		)
		if e.hooks.OnBacktrack != nil {
			e.hooks.OnBacktrack(domain.BacktrackEvent{State: from, Depth: e.checkpoints.len()})
		}

	case len(matches) > 1:
		e.checkpoints.push(checkpoint{
			state:   e.current,
			pending: append([]int(nil), matches[1:]...),
			input:   e.input.Clone(),
			outputs: cloneTapes(e.outputs),
		})
		chosen = matches[0]
		e.logger.Debug("branch point",
			"state", state.Name(),
			"alternatives", len(matches)-1,
			"depth", e.checkpoints.len(),
		)
		if e.hooks.OnBranch != nil {
			e.hooks.OnBranch(domain.BranchEvent{State: e.current, Alternatives: len(matches) - 1, Depth: e.checkpoints.len()})
		}

	default:
		chosen = matches[0]
	}

	t, err := state.Transition(chosen)
	if err != nil {
		return nil, e.fail(err)
	}
	target, _ := t.Target()
	if _, err := e.graph.State(target); err != nil {
		return nil, e.fail(err)
	}
	if err := e.apply(t); err != nil {
		return nil, e.fail(fmt.Errorf("state %q, transition %d (%s): %w", state.Name(), chosen, t, err))
	}
	e.current = target

	return e.record(&domain.TakenTransition{From: from, Index: chosen, Transition: t}, backtracked)
}

// underHeads reads the symbol under every head, input tape first.
func (e *Engine) underHeads() []domain.Symbol {
	under := make([]domain.Symbol, 0, len(e.outputs)+1)
	under = append(under, e.input.Read())
	for _, t := range e.outputs {
		under = append(under, t.Read())
	}
	return under
}

// apply runs t on every tape in order. The input tape is never written, only moved.
// A failure on a later tape leaves earlier tapes already moved.
func (e *Engine) apply(t domain.Transition) error {
	reads := t.Reads()
	ok, err := e.input.TryApply(reads[0], reads[0], t.Move())
	if err != nil {
		return fmt.Errorf("input tape: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: input tape no longer reads %q", domain.ErrIllegalAction, reads[0])
	}
	for i, w := range t.Writes() {
		ok, err := e.outputs[i].TryApply(reads[i+1], w.Symbol, w.Move)
		if err != nil {
			return fmt.Errorf("tape %d: %w", i+1, err)
		}
		if !ok {
			return fmt.Errorf("%w: tape %d no longer reads %q", domain.ErrIllegalAction, i+1, reads[i+1])
		}
	}
	return nil
}

func (e *Engine) record(taken *domain.TakenTransition, backtracked *int) (*domain.Step, error) {
	state, err := e.graph.State(e.current)
	if err != nil {
		return nil, e.fail(err)
	}
	outputs := make([]domain.TapeSnapshot, len(e.outputs))
	for i, t := range e.outputs {
		outputs[i] = t.Snapshot()
	}
	step := &domain.Step{
		State:         e.current,
		StateName:     state.Name(),
		Transition:    taken,
		Input:         e.input.Snapshot(),
		Outputs:       outputs,
		BacktrackedTo: backtracked,
	}
	e.steps++
	if e.hooks.OnStep != nil {
		e.hooks.OnStep(step)
	}
	return step, nil
}

func (e *Engine) halt() {
	e.halted = true
	status := e.Status()
	e.logger.Debug("run halted", "status", status, "steps", e.steps)
	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(domain.HaltEvent{Status: status, Steps: e.steps})
	}
}

func (e *Engine) fail(err error) error {
	e.failed = err
	e.logger.Error("run failed", "error", err, "steps", e.steps)
	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(domain.HaltEvent{Status: domain.StatusFailed, Steps: e.steps})
	}
	return err
}
