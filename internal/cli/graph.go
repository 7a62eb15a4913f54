package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/internal/presentation/graph"
	"github.com/aretw0/ribbon/pkg/definition"
	"github.com/aretw0/ribbon/pkg/domain"
)

// Graph output formats.
const (
	FormatMermaid = "mermaid"
	FormatYAML    = "yaml"
)

// Graph executes `ribbon graph`. With a word, the states its run visited are highlighted.
func Graph(ctx context.Context, env Env, opts GraphOptions) (err error) {
	logger, closeLog, err := createLogger(env.Fs, env.Stderr, opts.Log)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	defer func() { err = errors.Join(err, closeLog()) }()

	m, err := loadMachine(ctx, env.Fs, opts.DefinitionPath, logger, domain.LifecycleHooks{})
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	switch opts.Format {
	case "", FormatMermaid:
	case FormatYAML:
		if opts.Word != "" {
			return &ExitError{Code: ExitFailure, Err: errors.New("--word only applies to mermaid output")}
		}
		def := definition.FromGraph(m.Graph())
		def.Name = m.Name
		if err := definition.Encode(env.Stdout, def); err != nil {
			return &ExitError{Code: ExitFailure, Err: err}
		}
		return nil
	default:
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("unknown format %q", opts.Format)}
	}

	var overlay *graph.GraphOverlay
	if opts.Word != "" {
		trace, runErr := m.Run(ctx, opts.Word)
		if trace == nil {
			return &ExitError{Code: ExitFailure, Err: runErr}
		}
		// A run cut short still shows how far it got.
		if runErr != nil && !errors.Is(runErr, ribbon.ErrStepLimit) {
			logger.Warn("overlay run ended with an error", "error", runErr)
		}
		overlay = graph.OverlayFromTrace(trace)
	}

	fmt.Fprint(env.Stdout, graph.GenerateMermaid(m.Graph(), overlay))
	return nil
}
