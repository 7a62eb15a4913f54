package ports

import (
	"context"

	"github.com/aretw0/ribbon/pkg/domain"
)

// TraceStore defines the interface for persisting run traces.
// It lets a server or CLI keep the step sequence of a run after the engine is gone.
type TraceStore interface {
	// Save persists the trace under its ID, replacing any previous version.
	Save(ctx context.Context, trace *domain.Trace) error

	// Load retrieves the trace with the given ID.
	// Returns domain.ErrTraceNotFound if the trace does not exist.
	Load(ctx context.Context, id string) (*domain.Trace, error)

	// Delete removes the trace. Deleting a missing trace is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of the stored traces.
	List(ctx context.Context) ([]string, error)
}

// GraphSource yields a machine graph from some external definition.
type GraphSource interface {
	Graph(ctx context.Context) (*domain.Graph, error)
}
