package domain

// BranchEvent is emitted when several transitions match and a checkpoint is pushed.
type BranchEvent struct {
	State        int
	Alternatives int // transitions queued for later exploration
	Depth        int // checkpoint stack size after the push
}

// BacktrackEvent is emitted when the engine resumes from a checkpoint.
type BacktrackEvent struct {
	State int
	Depth int // checkpoint stack size after the resume
}

// HaltEvent is emitted once when the sequence of steps ends.
type HaltEvent struct {
	Status Status
	Steps  int
}

// LifecycleHooks defines callbacks for engine observability.
// They run synchronously inside Next and must not call back into the engine.
type LifecycleHooks struct {
	OnStep      func(*Step)
	OnBranch    func(BranchEvent)
	OnBacktrack func(BacktrackEvent)
	OnHalt      func(HaltEvent)
}

// Merge returns hooks that call h then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStep: func(s *Step) {
			if h.OnStep != nil {
				h.OnStep(s)
			}
			if other.OnStep != nil {
				other.OnStep(s)
			}
		},
		OnBranch: func(e BranchEvent) {
			if h.OnBranch != nil {
				h.OnBranch(e)
			}
			if other.OnBranch != nil {
				other.OnBranch(e)
			}
		},
		OnBacktrack: func(e BacktrackEvent) {
			if h.OnBacktrack != nil {
				h.OnBacktrack(e)
			}
			if other.OnBacktrack != nil {
				other.OnBacktrack(e)
			}
		},
		OnHalt: func(e HaltEvent) {
			if h.OnHalt != nil {
				h.OnHalt(e)
			}
			if other.OnHalt != nil {
				other.OnHalt(e)
			}
		},
	}
}
