package ribbon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/aretw0/ribbon/internal/runtime"
	"github.com/aretw0/ribbon/pkg/domain"
)

// Version is the library version reported by the CLI.
const Version = "0.4.0"

var (
	// DefaultMaxSteps caps Run when no WithMaxSteps option is given.
	DefaultMaxSteps = 10000
	// EnvMaxSteps is the environment variable that overrides DefaultMaxSteps.
	EnvMaxSteps = "RIBBON_MAX_STEPS"
)

// ErrStepLimit is returned by Run when the step cap is reached before the machine halts.
var ErrStepLimit = errors.New("step limit reached")

// Engine steps one machine over one word. See NewEngine and Machine.Start.
type Engine = runtime.Engine

// Machine is the high-level entry point: it holds a graph, exposes the
// construction surface over it and runs words through it.
// A Machine and the engines it starts must be driven from one goroutine at a time.
type Machine struct {
	graph    *domain.Graph
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	maxSteps int
	Name     string
}

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks passed to every engine.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithName labels the machine in logs and traces.
func WithName(name string) Option {
	return func(m *Machine) {
		m.Name = name
	}
}

// WithMaxSteps caps the number of steps Run will produce.
func WithMaxSteps(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.maxSteps = n
		}
	}
}

// New creates a machine that owns a fresh graph with k writing tapes.
func New(k int, opts ...Option) (*Machine, error) {
	g, err := domain.NewGraph(k)
	if err != nil {
		return nil, err
	}
	return FromGraph(g, opts...)
}

// FromGraph creates a machine over an existing graph, typically one built by a loader.
func FromGraph(g *domain.Graph, opts ...Option) (*Machine, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is required", domain.ErrIllegalAction)
	}
	m := &Machine{
		graph:    g,
		maxSteps: getMaxSteps(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.Name != "" {
		m.logger = m.logger.With("machine", m.Name)
	}
	return m, nil
}

// NewEngine binds an engine to g and feeds it word.
func NewEngine(g *domain.Graph, word string, opts ...Option) (*Engine, error) {
	m, err := FromGraph(g, opts...)
	if err != nil {
		return nil, err
	}
	return m.Start(word)
}

func getMaxSteps() int {
	if val := os.Getenv(EnvMaxSteps); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxSteps
}

// Graph returns the underlying graph.
func (m *Machine) Graph() *domain.Graph { return m.graph }

// MaxSteps returns the cap applied by Run.
func (m *Machine) MaxSteps() int { return m.maxSteps }

// Start returns an engine bound to the machine's graph with word on its input tape.
func (m *Machine) Start(word string) (*Engine, error) {
	return runtime.NewEngine(m.graph, word,
		runtime.WithLogger(m.logger),
		runtime.WithLifecycleHooks(m.hooks),
	)
}

// RunOption configures a single call to Run.
type RunOption func(*runConfig)

type runConfig struct {
	maxSteps int
	observe  func(*domain.Step) error
}

// WithStepLimit overrides the machine's step cap for one run.
func WithStepLimit(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.maxSteps = n
		}
	}
}

// WithStepObserver calls fn with every step as it is produced.
// An error from fn stops the run and is returned with the partial trace.
func WithStepObserver(fn func(*domain.Step) error) RunOption {
	return func(c *runConfig) {
		c.observe = fn
	}
}

// Run drives a fresh engine until it halts, fails, hits the step cap or ctx is done.
// Cancellation is checked between whole steps. The trace is returned in every case
// except an invalid word, so callers can inspect partial runs.
func (m *Machine) Run(ctx context.Context, word string, opts ...RunOption) (*domain.Trace, error) {
	cfg := runConfig{maxSteps: m.maxSteps}
	for _, opt := range opts {
		opt(&cfg)
	}

	eng, err := m.Start(word)
	if err != nil {
		return nil, err
	}
	trace := domain.NewTrace(word)
	trace.Machine = m.Name

	for {
		if eng.Status() == domain.StatusRunning {
			if err := ctx.Err(); err != nil {
				trace.Status = eng.Status()
				return trace, err
			}
		}

		// The cap applies to steps actually produced: a run whose next call ends it
		// (accepted, or rejected with no checkpoint left) is never a limit error.
		step, err := eng.Next()
		if err != nil {
			trace.Status = domain.StatusFailed
			return trace, err
		}
		if step == nil {
			break
		}
		if len(trace.Steps) >= cfg.maxSteps {
			// The step past the cap is dropped, so the trace still ends mid-run.
			trace.Status = domain.StatusRunning
			return trace, fmt.Errorf("%w: %d steps", ErrStepLimit, cfg.maxSteps)
		}
		trace.Steps = append(trace.Steps, *step)
		if cfg.observe != nil {
			if err := cfg.observe(step); err != nil {
				trace.Status = eng.Status()
				return trace, err
			}
		}
	}

	trace.Status = eng.Status()
	m.logger.Debug("run finished", "word", word, "status", trace.Status, "steps", len(trace.Steps))
	return trace, nil
}

// Accepts reports whether some branch of the run reaches the accepting state.
func (m *Machine) Accepts(ctx context.Context, word string) (bool, error) {
	trace, err := m.Run(ctx, word)
	if err != nil {
		return false, err
	}
	return trace.Status == domain.StatusAccepted, nil
}
