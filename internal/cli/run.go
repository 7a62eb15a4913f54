package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/ribbon/internal/presentation/tui"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/observability"
	"github.com/aretw0/ribbon/pkg/runner"
	"github.com/muesli/termenv"
)

// Run executes `ribbon run`: one word through one machine definition.
// The returned error carries the exit code (see ExitCode).
func Run(ctx context.Context, env Env, opts RunOptions) (err error) {
	logger, closeLog, err := createLogger(env.Fs, env.Stderr, opts.Log)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	defer func() { err = errors.Join(err, closeLog()) }()

	m, err := loadMachine(ctx, env.Fs, opts.DefinitionPath, logger, observability.LogHooks(logger))
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	store, closeStore, err := openStore(env.Fs, opts.Store)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	defer func() { err = errors.Join(err, closeStore()) }()

	renderer := newTapeRenderer(env)
	var handler runner.OutputHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(env.Stdout)
	} else {
		handler = runner.NewTextHandler(env.Stdout,
			runner.WithFormatters(renderer.Step, renderer.Status),
			runner.WithQuiet(opts.Quiet),
		)
	}

	r := runner.NewRunner(
		runner.WithHandler(handler),
		runner.WithLogger(logger),
		runner.WithStore(store),
		runner.WithSignals(true),
		runner.WithMaxSteps(opts.MaxSteps),
	)

	trace, runErr := r.Run(ctx, m, opts.Word)
	if trace == nil {
		return &ExitError{Code: ExitFailure, Err: runErr}
	}

	if opts.Report && !opts.JSON {
		if err := printReport(env, trace); err != nil {
			logger.Warn("failed to render report", "error", err)
		}
	}
	if store != nil && !opts.JSON {
		printSystemMessage(env.Stderr, "trace %s saved (%s)", trace.ID, opts.Store.Kind)
	}
	return handleRunResult(trace, runErr)
}

func newTapeRenderer(env Env) *tui.TapeRenderer {
	if env.isTTY() {
		return tui.NewTapeRenderer(env.Stdout)
	}
	return tui.NewTapeRenderer(env.Stdout, termenv.WithProfile(termenv.Ascii))
}

// printReport writes the Markdown summary of trace, rendered with glamour on terminals.
func printReport(env Env, trace *domain.Trace) error {
	report := tui.Report(trace)
	if !env.isTTY() {
		_, err := fmt.Fprint(env.Stdout, report)
		return err
	}
	render, err := tui.NewRenderer(0)
	if err != nil {
		return err
	}
	out, err := render(report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(env.Stdout, out)
	return err
}
