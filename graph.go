package ribbon

import (
	"fmt"

	"github.com/aretw0/ribbon/pkg/domain"
)

// K returns the number of writing tapes.
func (m *Machine) K() int { return m.graph.K() }

// AddState returns the index of the named state, creating it if needed.
func (m *Machine) AddState(name string) (int, error) {
	idx, err := m.graph.AddStateChecked(name)
	if err != nil {
		return 0, err
	}
	m.logger.Debug("state added", "state", name, "index", idx)
	return idx, nil
}

// AppendTransition adds t from one state to another, both given by name.
// Missing states are created, but only once t is known to fit the machine.
func (m *Machine) AppendTransition(from string, t domain.Transition, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: state name cannot be empty", domain.ErrIllegalAction)
	}
	if t.Ribbons() != m.graph.K()+1 {
		return fmt.Errorf("%w: transition %s guards %d tapes, machine has %d",
			domain.ErrIncompatibleTransition, t, t.Ribbons(), m.graph.K()+1)
	}
	fromIdx, _ := m.AddState(from)
	toIdx, _ := m.AddState(to)
	return m.AppendTransitionAt(fromIdx, t, toIdx)
}

// AppendTransitionAt adds t between two state indices.
func (m *Machine) AppendTransitionAt(from int, t domain.Transition, to int) error {
	if err := m.graph.AppendTransition(from, t, to); err != nil {
		return err
	}
	m.logger.Debug("transition added", "from", from, "to", to, "rule", t.String())
	return nil
}

// RemoveState deletes the state at idx.
func (m *Machine) RemoveState(idx int) error {
	if err := m.graph.RemoveState(idx); err != nil {
		return err
	}
	m.logger.Debug("state removed", "index", idx)
	return nil
}

// RemoveStateByName deletes the named state.
func (m *Machine) RemoveStateByName(name string) error {
	if err := m.graph.RemoveStateByName(name); err != nil {
		return err
	}
	m.logger.Debug("state removed", "state", name)
	return nil
}

// RemoveTransitions deletes every transition between two named states.
func (m *Machine) RemoveTransitions(from, to string) (int, error) {
	fromIdx, err := m.graph.Index(from)
	if err != nil {
		return 0, err
	}
	toIdx, err := m.graph.Index(to)
	if err != nil {
		return 0, err
	}
	n, err := m.graph.RemoveTransitions(fromIdx, toIdx)
	if err != nil {
		return 0, err
	}
	m.logger.Debug("transitions removed", "from", from, "to", to, "count", n)
	return n, nil
}

// State returns the state at idx.
func (m *Machine) State(idx int) (*domain.State, error) { return m.graph.State(idx) }

// StateByName returns the named state and its index.
func (m *Machine) StateByName(name string) (int, *domain.State, error) {
	return m.graph.StateByName(name)
}

// TransitionsBetween returns the transitions between two named states.
func (m *Machine) TransitionsBetween(from, to string) ([]domain.Transition, error) {
	fromIdx, err := m.graph.Index(from)
	if err != nil {
		return nil, err
	}
	toIdx, err := m.graph.Index(to)
	if err != nil {
		return nil, err
	}
	return m.graph.TransitionsBetween(fromIdx, toIdx)
}

// States lists the states in index order.
func (m *Machine) States() []*domain.State { return m.graph.States() }
