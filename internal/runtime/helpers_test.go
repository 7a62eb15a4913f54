package runtime_test

import (
	"strings"
	"testing"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/stretchr/testify/require"
)

// rule builds a transition from comma separated tokens, e.g. rule(t, "ç,ç", "ç", "R,R").
func rule(t *testing.T, reads, writes, moves string) domain.Transition {
	t.Helper()
	tr, err := domain.ParseTransition(split(reads), split(writes), split(moves))
	require.NoError(t, err)
	return tr
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// link appends rule from -> to, creating the states by name.
func link(t *testing.T, g *domain.Graph, from string, tr domain.Transition, to string) {
	t.Helper()
	require.NoError(t, g.AppendTransition(g.AddState(from), tr, g.AddState(to)))
}

func newGraph(t *testing.T, k int) *domain.Graph {
	t.Helper()
	g, err := domain.NewGraph(k)
	require.NoError(t, err)
	return g
}

// copyMachine writes one 'a' per input letter, then accepts on the end marker.
func copyMachine(t *testing.T) *domain.Graph {
	g := newGraph(t, 1)
	link(t, g, "i", rule(t, "ç,ç", "ç", "R,R"), "q1")
	link(t, g, "q1", rule(t, "0,_", "a", "R,R"), "q1")
	link(t, g, "q1", rule(t, "1,_", "a", "R,R"), "q1")
	link(t, g, "q1", rule(t, "$,_", "_", "N,N"), "a")
	return g
}
