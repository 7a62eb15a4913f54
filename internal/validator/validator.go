package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/ribbon/pkg/domain"
)

// ErrAcceptUnreachable is returned when no path of transitions leads from i to a.
var ErrAcceptUnreachable = errors.New("accepting state is unreachable")

// Result lists what ValidateGraph found. Warnings never make a graph unusable.
type Result struct {
	Reachable []string
	Warnings  []string
}

// ValidateGraph walks the graph from the initial state.
// It fails when the accepting state cannot be reached, and warns about
// unreachable states and non-final states without outgoing transitions.
func ValidateGraph(g *domain.Graph) (*Result, error) {
	states := g.States()
	visited := make([]bool, len(states))
	queue := []int{domain.InitialIndex}
	res := &Result{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true
		res.Reachable = append(res.Reachable, states[current].Name())

		for _, t := range states[current].Transitions() {
			target, ok := t.Target()
			if ok && !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	for idx, s := range states {
		if idx == domain.RejectingIndex || s.Kind() != domain.KindNormal {
			continue
		}
		switch {
		case !visited[idx]:
			res.Warnings = append(res.Warnings, fmt.Sprintf("state '%s' is unreachable from '%s'", s.Name(), domain.InitialState))
		case s.NumTransitions() == 0:
			res.Warnings = append(res.Warnings, fmt.Sprintf("state '%s' has no outgoing transitions; every branch reaching it is rejected", s.Name()))
		}
	}

	if !visited[domain.AcceptingIndex] {
		return res, fmt.Errorf("%w: reachable states are %s", ErrAcceptUnreachable, strings.Join(res.Reachable, ", "))
	}
	return res, nil
}
