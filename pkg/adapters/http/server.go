package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/internal/presentation/graph"
	"github.com/aretw0/ribbon/pkg/definition"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/aretw0/ribbon/pkg/observability"
	"github.com/aretw0/ribbon/pkg/ports"
	"github.com/aretw0/ribbon/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v3"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// MaxBodySize caps request bodies.
const MaxBodySize = 1 << 20

// ErrNoStore is returned by the trace endpoints when no store is configured.
var ErrNoStore = errors.New("no trace store configured")

// OtherMachine is the metrics label of runs whose machine name is not in the allowlist.
const OtherMachine = "other"

// Pinger is implemented by stores that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server exposes machine runs over HTTP.
// Every request builds its own graph and engine; nothing is shared between requests
// except the trace store and the metrics. It implements the generated ServerInterface.
type Server struct {
	Store    ports.TraceStore
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
	MaxSteps int
	// MachineLabels lists the machine names that get their own metrics series.
	// Names come from request bodies, so anything else is counted as OtherMachine.
	MachineLabels map[string]bool
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

type Option func(*Server)

// WithStore keeps every run's trace in store.
func WithStore(store ports.TraceStore) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithMetrics records runs into m and serves g on /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Metrics = m
		s.Gatherer = g
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMaxSteps caps every run; requests may only lower it.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		s.MaxSteps = n
	}
}

// WithMachineLabels lets runs of the named machines keep their name as the metrics label.
func WithMachineLabels(names ...string) Option {
	return func(s *Server) {
		if s.MachineLabels == nil {
			s.MachineLabels = make(map[string]bool, len(names))
		}
		for _, name := range names {
			s.MachineLabels[name] = true
		}
	}
}

// NewHandler creates the HTTP handler.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.MaxSteps <= 0 {
		s.MaxSteps = ribbon.DefaultMaxSteps
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			s.writeError(w, r, http.StatusInternalServerError, fmt.Errorf("failed to load spec: %w", err))
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, swaggerHTML)
	})
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	handler := HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			s.writeError(w, r, http.StatusBadRequest, err)
		},
	})
	return enableCORS(handler)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Ribbon API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PostRun handles the POST /runs request.
func (s *Server) PostRun(w http.ResponseWriter, r *http.Request) {
	var body PostRunJSONRequestBody
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	m, err := s.machine(body.Definition)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	limit := s.MaxSteps
	if body.MaxSteps > 0 && body.MaxSteps < limit {
		limit = body.MaxSteps
	}
	run := runner.NewRunner(
		runner.WithStore(s.Store),
		runner.WithLogger(s.Logger),
		runner.WithMaxSteps(limit),
	)

	trace, err := run.Run(r.Context(), m, body.Word)
	if trace == nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	resp := RunResponse{Trace: trace}
	if err != nil {
		resp.Error = err.Error()
		s.Logger.Warn("PostRun: run ended with error", "trace_id", trace.ID, "error", err)
	}
	writeJSON(w, s.Logger, http.StatusCreated, resp)
}

// machine builds a fresh machine for one request.
func (s *Server) machine(raw map[string]any) (*ribbon.Machine, error) {
	if raw == nil {
		return nil, &definition.ParseError{Field: "definition", Err: errors.New("missing")}
	}
	def, err := definition.Decode(raw)
	if err != nil {
		return nil, err
	}
	g, err := definition.Build(def)
	if err != nil {
		return nil, err
	}

	opts := []ribbon.Option{ribbon.WithLogger(s.Logger), ribbon.WithName(def.Name)}
	if s.Metrics != nil {
		opts = append(opts, ribbon.WithLifecycleHooks(s.Metrics.Hooks(s.metricsLabel(def.Name))))
	}
	return ribbon.FromGraph(g, opts...)
}

func (s *Server) metricsLabel(name string) string {
	if s.MachineLabels[name] {
		return name
	}
	return OtherMachine
}

// ListRuns handles the GET /runs request.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		s.writeError(w, r, http.StatusNotImplemented, ErrNoStore)
		return
	}
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, s.Logger, http.StatusOK, RunList{Runs: ids})
}

// GetRun handles the GET /runs/{id} request.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request, id string) {
	if s.Store == nil {
		s.writeError(w, r, http.StatusNotImplemented, ErrNoStore)
		return
	}
	trace, err := s.Store.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, s.Logger, http.StatusOK, RunResponse{Trace: trace})
}

// DeleteRun handles the DELETE /runs/{id} request.
func (s *Server) DeleteRun(w http.ResponseWriter, r *http.Request, id string) {
	if s.Store == nil {
		s.writeError(w, r, http.StatusNotImplemented, ErrNoStore)
		return
	}
	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostGraph handles the POST /graph request: a definition in, Mermaid out.
func (s *Server) PostGraph(w http.ResponseWriter, r *http.Request) {
	var raw PostGraphJSONRequestBody
	if err := decodeBody(w, r, &raw); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	def, err := definition.Decode(raw)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	g, err := definition.Build(def)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(g, nil))
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := s.Store.(Pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			s.writeError(w, r, http.StatusServiceUnavailable, fmt.Errorf("store unavailable: %w", err))
			return
		}
	}
	writeJSON(w, s.Logger, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	swagger, err := GetSwagger()
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, fmt.Errorf("failed to load spec: %w", err))
		return
	}
	writeJSON(w, s.Logger, http.StatusOK, Info{
		App:        "ribbon-http",
		Version:    ribbon.Version,
		ApiVersion: swagger.Info.Version,
		MaxSteps:   s.MaxSteps,
	})
}

// -- Helpers --

// decodeBody reads JSON, or YAML when the request says so.
// YAML is converted to JSON first so the generated types decode through their json tags.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodySize)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		var doc any
		if err := yaml.NewDecoder(body).Decode(&doc); err != nil {
			return err
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, v)
	default:
		return json.NewDecoder(body).Decode(v)
	}
}

// statusFor maps error kinds to status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, definition.ErrParse):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTraceNotFound):
		return http.StatusNotFound
	case errors.Is(err, runner.ErrInvalidWord),
		errors.Is(err, domain.ErrIllegalAction),
		errors.Is(err, domain.ErrTransitionArgs),
		errors.Is(err, domain.ErrIncompatibleTransition),
		errors.Is(err, domain.ErrUnknownState),
		errors.Is(err, domain.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	} else {
		s.Logger.Warn("request rejected", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	}
	writeJSON(w, s.Logger, status, Error{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
