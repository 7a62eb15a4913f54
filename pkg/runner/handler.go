package runner

import (
	"context"

	"github.com/aretw0/ribbon/pkg/domain"
)

// OutputHandler receives the steps of a run as they are produced, then its outcome.
type OutputHandler interface {
	// Step is called once per step. An error aborts the run.
	Step(ctx context.Context, step *domain.Step) error

	// Done is called once with the final (possibly partial) trace and the run error, if any.
	Done(ctx context.Context, trace *domain.Trace, runErr error) error
}

// Discard is an OutputHandler that reports nothing.
type Discard struct{}

func (Discard) Step(context.Context, *domain.Step) error { return nil }
func (Discard) Done(context.Context, *domain.Trace, error) error { return nil }
