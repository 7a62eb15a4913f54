package observability

import (
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "ribbon"

// Metrics holds the engine collectors. Create it once per registry.
type Metrics struct {
	Steps        *prometheus.CounterVec
	Branches     *prometheus.CounterVec
	Backtracks   *prometheus.CounterVec
	Halts        *prometheus.CounterVec
	StepsPerRun  *prometheus.HistogramVec
	BranchDepths *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "steps_total",
				Help:      "Total number of execution steps produced",
			},
			[]string{"machine"},
		),
		Branches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "branches_total",
				Help:      "Total number of non-deterministic branch points (checkpoints pushed)",
			},
			[]string{"machine"},
		),
		Backtracks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "backtracks_total",
				Help:      "Total number of resumptions from a checkpoint",
			},
			[]string{"machine"},
		),
		Halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "halts_total",
				Help:      "Total number of finished runs by status",
			},
			[]string{"machine", "status"},
		),
		StepsPerRun: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "run_steps",
				Help:      "Number of steps recorded by finished runs",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"machine"},
		),
		BranchDepths: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "checkpoint_depth",
				Help:      "Checkpoint stack size observed after each branch point",
				Buckets:   prometheus.LinearBuckets(1, 2, 8),
			},
			[]string{"machine"},
		),
	}

	for _, c := range []prometheus.Collector{m.Steps, m.Branches, m.Backtracks, m.Halts, m.StepsPerRun, m.BranchDepths} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m under the given machine label.
func (m *Metrics) Hooks(machine string) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(*domain.Step) {
			m.Steps.WithLabelValues(machine).Inc()
		},
		OnBranch: func(e domain.BranchEvent) {
			m.Branches.WithLabelValues(machine).Inc()
			m.BranchDepths.WithLabelValues(machine).Observe(float64(e.Depth))
		},
		OnBacktrack: func(domain.BacktrackEvent) {
			m.Backtracks.WithLabelValues(machine).Inc()
		},
		OnHalt: func(e domain.HaltEvent) {
			m.Halts.WithLabelValues(machine, string(e.Status)).Inc()
			m.StepsPerRun.WithLabelValues(machine).Observe(float64(e.Steps))
		},
	}
}
