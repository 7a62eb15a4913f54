package runtime

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/aretw0/ribbon/pkg/domain"
)

// Engine drives one run of a machine over one input word.
// It borrows the graph: callers must not edit the graph while a step is in flight,
// and must serialize every call into a given Engine.
type Engine struct {
	graph *domain.Graph
	word  []domain.Symbol

	input   *domain.Tape
	outputs []*domain.Tape
	current int

	started bool
	halted  bool
	failed  error
	steps   int

	checkpoints checkpointStack

	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine binds an engine to graph and feeds word to the input tape.
func NewEngine(graph *domain.Graph, word string, opts ...EngineOption) (*Engine, error) {
	if graph == nil {
		return nil, fmt.Errorf("%w: engine requires a graph", domain.ErrIllegalAction)
	}
	e := &Engine{
		graph:  graph,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.ResetWith(word); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset rewinds the engine and re-feeds the current word.
func (e *Engine) Reset() error {
	return e.load(e.word)
}

// ResetWith rewinds the engine and feeds a new word.
// The word must be non-empty and free of marker glyphs.
func (e *Engine) ResetWith(word string) error {
	return e.load(domain.ParseWord(word))
}

func (e *Engine) load(word []domain.Symbol) error {
	if len(word) == 0 {
		return fmt.Errorf("%w: input word cannot be empty", domain.ErrIllegalAction)
	}
	input := domain.NewInputTape()
	if err := input.Feed(word); err != nil {
		return err
	}

	outputs := make([]*domain.Tape, e.graph.K())
	for i := range outputs {
		outputs[i] = domain.NewOutputTape()
	}

	e.word = word
	e.input = input
	e.outputs = outputs
	e.current = domain.InitialIndex
	e.started = false
	e.halted = false
	e.failed = nil
	e.steps = 0
	e.checkpoints.clear()
	return nil
}

// Graph returns the graph the engine is bound to.
func (e *Engine) Graph() *domain.Graph { return e.graph }

// Word returns the word currently fed to the input tape.
func (e *Engine) Word() string { return domain.FormatSymbols(e.word, "") }

// CurrentState returns the index of the current state.
func (e *Engine) CurrentState() int { return e.current }

// Checkpoints returns the number of saved branch points.
func (e *Engine) Checkpoints() int { return e.checkpoints.len() }

// StepCount returns the number of steps produced since the last reset.
func (e *Engine) StepCount() int { return e.steps }

// TapeSnapshot returns tape which: 0 is the input tape, 1..k the writing tapes.
func (e *Engine) TapeSnapshot(which int) (domain.TapeSnapshot, error) {
	if which < 0 || which > len(e.outputs) {
		return domain.TapeSnapshot{}, &domain.RangeError{Target: domain.RangeRibbon, Index: which, Len: len(e.outputs) + 1}
	}
	if which == 0 {
		return e.input.Snapshot(), nil
	}
	return e.outputs[which-1].Snapshot(), nil
}

// Status reports the outcome so far.
func (e *Engine) Status() domain.Status {
	switch {
	case e.failed != nil:
		return domain.StatusFailed
	case e.inAccepting():
		return domain.StatusAccepted
	case e.halted:
		return domain.StatusRejected
	}
	return domain.StatusRunning
}

func (e *Engine) inAccepting() bool {
	s, err := e.graph.State(e.current)
	return err == nil && s.Kind() == domain.KindAccepting
}

// Steps yields the remaining steps until the sequence ends or an error occurs.
func (e *Engine) Steps() iter.Seq2[*domain.Step, error] {
	return func(yield func(*domain.Step, error) bool) {
		for {
			step, err := e.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if step == nil || !yield(step, nil) {
				return
			}
		}
	}
}
