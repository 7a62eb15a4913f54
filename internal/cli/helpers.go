package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/ribbon/internal/logging"
	"github.com/aretw0/ribbon/pkg/adapters/file"
	"github.com/aretw0/ribbon/pkg/adapters/memory"
	"github.com/aretw0/ribbon/pkg/adapters/redis"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/ports"
	"github.com/spf13/afero"
)

// Process exit codes.
const (
	ExitAccepted = 0
	ExitRejected = 1
	ExitFailure  = 2
)

// ExitError carries a process exit code up to main.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitAccepted
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// createLogger builds the application logger and returns a func closing the log file, if any.
func createLogger(fsys afero.Fs, stderr io.Writer, opts LogOptions) (*slog.Logger, func() error, error) {
	level := logging.ParseLevel(opts.Level)
	if opts.Level == "" {
		level = slog.LevelWarn
	}
	if opts.File == "" {
		return logging.NewWithWriter(stderr, level), func() error { return nil }, nil
	}

	f, err := fsys.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	// The file always gets debug records; the terminal only gets the chosen level.
	logger := logging.NewWithWriter(stderr, level, logging.NewJSONHandler(f, slog.LevelDebug))
	return logger, f.Close, nil
}

// openStore opens the trace store selected by opts. A nil store means traces are not kept.
func openStore(fsys afero.Fs, opts StoreOptions) (ports.TraceStore, func() error, error) {
	noop := func() error { return nil }
	switch opts.Kind {
	case StoreNone:
		return nil, noop, nil
	case StoreMemory:
		return memory.NewStore(), noop, nil
	case StoreFile:
		return file.NewWithFs(fsys, opts.Dir), noop, nil
	case StoreRedis:
		addr := opts.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}
		store := redis.New(addr, os.Getenv("RIBBON_REDIS_PASSWORD"), opts.RedisDB)
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q (want %s, %s or %s)", opts.Kind, StoreMemory, StoreFile, StoreRedis)
}

// isInterrupted reports whether err comes from a signal or a canceled context.
func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// handleRunResult maps a finished run to the command's error.
func handleRunResult(trace *domain.Trace, err error) error {
	switch {
	case err == nil && trace.Status == domain.StatusAccepted:
		return nil
	case err == nil && trace.Status == domain.StatusRejected:
		return &ExitError{Code: ExitRejected}
	case err == nil:
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("run ended with status %s", trace.Status)}
	case isInterrupted(err):
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("interrupted after %d steps", len(trace.Steps))}
	}
	return &ExitError{Code: ExitFailure, Err: err}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
