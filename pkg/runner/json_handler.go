package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/ribbon/pkg/domain"
)

// Event types emitted by JSONHandler.
const (
	EventStep   = "step"
	EventResult = "result"
)

// Event is one JSON line.
type Event struct {
	Type  string       `json:"type"`
	Step  *domain.Step `json:"step,omitempty"`
	Index int          `json:"index,omitempty"`

	TraceID string        `json:"trace_id,omitempty"`
	Status  domain.Status `json:"status,omitempty"`
	Steps   int           `json:"steps,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// JSONHandler implements OutputHandler for structured JSON-Lines communication.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder
	count   int
}

// NewJSONHandler creates a handler for JSON output (Stdout when nil).
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Step(ctx context.Context, step *domain.Step) error {
	ev := Event{Type: EventStep, Step: step, Index: h.count}
	h.count++
	return h.Encoder.Encode(ev)
}

func (h *JSONHandler) Done(ctx context.Context, trace *domain.Trace, runErr error) error {
	ev := Event{
		Type:    EventResult,
		TraceID: trace.ID,
		Status:  trace.Status,
		Steps:   len(trace.Steps),
	}
	if runErr != nil {
		ev.Error = runErr.Error()
	}
	h.count = 0
	return h.Encoder.Encode(ev)
}
