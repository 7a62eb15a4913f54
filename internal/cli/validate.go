package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/ribbon/internal/validator"
	"github.com/aretw0/ribbon/pkg/domain"
)

// ValidateOptions configure `ribbon validate`.
type ValidateOptions struct {
	DefinitionPath string
	// Strict turns warnings into a failure.
	Strict bool
	Log    LogOptions
}

// Validate executes `ribbon validate`: it builds the definition and checks its graph.
func Validate(ctx context.Context, env Env, opts ValidateOptions) (err error) {
	logger, closeLog, err := createLogger(env.Fs, env.Stderr, opts.Log)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	defer func() { err = errors.Join(err, closeLog()) }()

	m, err := loadMachine(ctx, env.Fs, opts.DefinitionPath, logger, domain.LifecycleHooks{})
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	res, err := validator.ValidateGraph(m.Graph())
	for _, w := range res.Warnings {
		fmt.Fprintf(env.Stdout, "warning: %s\n", w)
	}
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	if opts.Strict && len(res.Warnings) > 0 {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%d warnings", len(res.Warnings))}
	}
	fmt.Fprintf(env.Stdout, "%s: %d states, %d reachable, %d writing tapes\n",
		m.Name, m.Graph().Len(), len(res.Reachable), m.K())
	return nil
}
