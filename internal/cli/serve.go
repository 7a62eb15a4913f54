package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/ribbon/pkg/adapters/http"
	"github.com/aretw0/ribbon/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ShutdownTimeout bounds how long in-flight requests get once the server is asked to stop.
const ShutdownTimeout = 5 * time.Second

// Serve executes `ribbon serve` and blocks until ctx is done.
func Serve(ctx context.Context, env Env, opts ServeOptions) error {
	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("failed to listen: %w", err)}
	}
	return serve(ctx, env, opts, ln)
}

func serve(ctx context.Context, env Env, opts ServeOptions, ln net.Listener) (err error) {
	logger, closeLog, err := createLogger(env.Fs, env.Stderr, opts.Log)
	if err != nil {
		ln.Close()
		return &ExitError{Code: ExitFailure, Err: err}
	}
	defer func() { err = errors.Join(err, closeLog()) }()

	store, closeStore, err := openStore(env.Fs, opts.Store)
	if err != nil {
		ln.Close()
		return &ExitError{Code: ExitFailure, Err: err}
	}
	defer func() { err = errors.Join(err, closeStore()) }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		ln.Close()
		return &ExitError{Code: ExitFailure, Err: err}
	}

	handler := httpAdapter.NewHandler(
		httpAdapter.WithStore(store),
		httpAdapter.WithMetrics(metrics, reg),
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMaxSteps(opts.MaxSteps),
		httpAdapter.WithMachineLabels(opts.MachineLabels...),
	)
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(env.Stderr, "ribbon server listening on %s", ln.Addr())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("server error: %w", err)}

	case <-ctx.Done():
		printSystemMessage(env.Stderr, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return &ExitError{Code: ExitFailure, Err: fmt.Errorf("failed to close server: %w", err)}
			}
		}
		printSystemMessage(env.Stderr, "server stopped")
		return nil
	}
}
