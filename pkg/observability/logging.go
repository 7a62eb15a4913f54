package observability

import (
	"log/slog"

	"github.com/aretw0/ribbon/pkg/domain"
)

// LogHooks returns lifecycle hooks that write one record per event.
// Steps are logged at Debug, branch points and backtracks at Debug, halts at Info.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(s *domain.Step) {
			logger.Debug("step", "state", s.StateName, "backtracked", s.BacktrackedTo != nil)
		},
		OnBranch: func(e domain.BranchEvent) {
			logger.Debug("branch", "state", e.State, "alternatives", e.Alternatives, "depth", e.Depth)
		},
		OnBacktrack: func(e domain.BacktrackEvent) {
			logger.Debug("backtrack", "state", e.State, "depth", e.Depth)
		},
		OnHalt: func(e domain.HaltEvent) {
			logger.Info("halt", "status", e.Status, "steps", e.Steps)
		},
	}
}
