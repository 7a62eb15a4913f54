package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/ribbon/pkg/domain"
)

// StepFormatter turns a step into one line of text.
// This allows for TUI rendering (colours) without coupling this package to a terminal library.
type StepFormatter func(*domain.Step) string

// StatusFormatter turns the final status into text.
type StatusFormatter func(domain.Status) string

// TextHandler implements OutputHandler with one line per step and a closing status line.
type TextHandler struct {
	Writer       io.Writer
	FormatStep   StepFormatter
	FormatStatus StatusFormatter
	// Quiet suppresses step lines; only the outcome is printed.
	Quiet bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithFormatters sets custom step and status formatters.
func WithFormatters(step StepFormatter, status StatusFormatter) TextHandlerOption {
	return func(h *TextHandler) {
		if step != nil {
			h.FormatStep = step
		}
		if status != nil {
			h.FormatStatus = status
		}
	}
}

// WithQuiet only prints the outcome.
func WithQuiet(quiet bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Quiet = quiet
	}
}

// NewTextHandler creates a text handler writing to w (Stdout when nil).
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:       w,
		FormatStep:   func(s *domain.Step) string { return s.String() },
		FormatStatus: func(s domain.Status) string { return string(s) },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Step(ctx context.Context, step *domain.Step) error {
	if h.Quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.Writer, h.FormatStep(step))
	return err
}

func (h *TextHandler) Done(ctx context.Context, trace *domain.Trace, runErr error) error {
	if runErr != nil {
		_, err := fmt.Fprintf(h.Writer, "%s after %d steps: %v\n", h.FormatStatus(trace.Status), len(trace.Steps), runErr)
		return err
	}
	_, err := fmt.Fprintln(h.Writer, h.FormatStatus(trace.Status))
	return err
}
