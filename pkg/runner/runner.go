package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/ports"
)

// ErrInvalidWord wraps every word rejected before the run starts.
var ErrInvalidWord = errors.New("invalid word")

// Runner handles the execution of a machine over a word using the provided handler.
// This allows for easy testing and integration with different frontends (CLI, HTTP, etc).
type Runner struct {
	// Handler is the strategy for output. If nil, steps are not reported.
	Handler OutputHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Store is the persistence adapter for traces.
	// If nil, traces are ephemeral.
	Store ports.TraceStore

	// HandleSignals derives the run context from SIGINT/SIGTERM.
	HandleSignals bool

	// MaxSteps overrides the machine's cap when positive.
	MaxSteps int
}

// NewRunner creates a new Runner with options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = Discard{}
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run validates word, runs it through m while reporting steps, then saves the trace.
// The trace is returned whenever the run started, even when err is not nil.
func (r *Runner) Run(ctx context.Context, m *ribbon.Machine, word string) (*domain.Trace, error) {
	clean, err := SanitizeWord(word)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWord, err)
	}

	if r.HandleSignals {
		signals := NewSignalManager(ctx)
		defer signals.Stop()
		ctx = signals.Context()
	}

	opts := []ribbon.RunOption{
		ribbon.WithStepObserver(func(s *domain.Step) error {
			return r.Handler.Step(ctx, s)
		}),
	}
	if r.MaxSteps > 0 {
		opts = append(opts, ribbon.WithStepLimit(r.MaxSteps))
	}

	trace, runErr := m.Run(ctx, clean, opts...)
	if trace == nil {
		return nil, runErr
	}
	r.Logger.Debug("run completed", "trace_id", trace.ID, "status", trace.Status, "steps", len(trace.Steps), "error", runErr)

	if r.Store != nil {
		// Interrupted runs are saved too; the stored trace shows how far they got.
		if err := r.Store.Save(context.WithoutCancel(ctx), trace); err != nil {
			return trace, errors.Join(runErr, fmt.Errorf("failed to save trace: %w", err))
		}
	}

	if err := r.Handler.Done(ctx, trace, runErr); err != nil {
		return trace, errors.Join(runErr, err)
	}
	return trace, runErr
}
