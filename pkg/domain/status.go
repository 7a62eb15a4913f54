package domain

// Status is the outcome of a run.
type Status string

const (
	// StatusRunning means the sequence of steps has not ended.
	StatusRunning Status = "running"
	// StatusAccepted means the accepting state was reached.
	StatusAccepted Status = "accepted"
	// StatusRejected means every branch dead-ended without reaching the accepting state.
	StatusRejected Status = "rejected"
	// StatusFailed means a tape application failed mid-step.
	StatusFailed Status = "failed"
)

// Terminal reports whether no further step will be produced.
func (s Status) Terminal() bool {
	return s != StatusRunning
}
