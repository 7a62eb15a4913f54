package domain_test

import (
	"testing"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRule(t *testing.T, reads, writes, moves []string) domain.Transition {
	t.Helper()
	tr, err := domain.ParseTransition(reads, writes, moves)
	require.NoError(t, err)
	return tr
}

// assertConsistent checks that the name index and the state list agree.
func assertConsistent(t *testing.T, g *domain.Graph) {
	t.Helper()
	for i, s := range g.States() {
		idx, err := g.Index(s.Name())
		require.NoError(t, err)
		assert.Equal(t, i, idx, "state %q", s.Name())
		for _, tr := range s.Transitions() {
			target, ok := tr.Target()
			assert.True(t, ok)
			assert.Less(t, target, g.Len(), "dangling target in %q", s.Name())
		}
	}
}

func TestNewGraph(t *testing.T) {
	_, err := domain.NewGraph(0)
	assert.ErrorIs(t, err, domain.ErrIllegalAction)

	g, err := domain.NewGraph(2)
	require.NoError(t, err)
	assert.Equal(t, 2, g.K())
	require.Equal(t, 3, g.Len())

	want := []struct {
		name string
		kind domain.StateKind
	}{
		{"i", domain.KindNormal},
		{"a", domain.KindAccepting},
		{"r", domain.KindRejecting},
	}
	for i, w := range want {
		s, err := g.State(i)
		require.NoError(t, err)
		assert.Equal(t, w.name, s.Name())
		assert.Equal(t, w.kind, s.Kind())
	}
	assertConsistent(t, g)
}

func TestGraph_AddStateIsIdempotent(t *testing.T) {
	g, err := domain.NewGraph(1)
	require.NoError(t, err)

	q := g.AddState("q")
	assert.Equal(t, 3, q)
	assert.Equal(t, q, g.AddState("q"))
	assert.Equal(t, domain.AcceptingIndex, g.AddState("a"))
	assert.Equal(t, 4, g.Len())

	_, err = g.AddStateChecked("")
	assert.ErrorIs(t, err, domain.ErrIllegalAction)
}

func TestGraph_Lookups(t *testing.T) {
	g, err := domain.NewGraph(1)
	require.NoError(t, err)

	_, err = g.State(3)
	var rangeErr *domain.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, domain.RangeState, rangeErr.Target)

	_, err = g.State(-1)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	_, _, err = g.StateByName("nope")
	var unknown *domain.UnknownStateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Name)
	assert.ErrorIs(t, err, domain.ErrUnknownState)

	idx, s, err := g.StateByName("r")
	require.NoError(t, err)
	assert.Equal(t, domain.RejectingIndex, idx)
	assert.Equal(t, domain.KindRejecting, s.Kind())
}

func TestGraph_AppendTransition(t *testing.T) {
	g, err := domain.NewGraph(1)
	require.NoError(t, err)
	q := g.AddState("q")
	tr := mustRule(t, []string{"ç", "ç"}, []string{"ç"}, []string{"R", "R"})

	assert.ErrorIs(t, g.AppendTransition(99, tr, q), domain.ErrOutOfRange)
	assert.ErrorIs(t, g.AppendTransition(0, tr, 99), domain.ErrOutOfRange)

	wide := mustRule(t, []string{"ç", "ç", "ç"}, []string{"ç", "ç"}, []string{"R", "R", "R"})
	assert.ErrorIs(t, g.AppendTransition(0, wide, q), domain.ErrIncompatibleTransition)

	s, err := g.State(0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.NumTransitions(), "rejected appends leave the graph unchanged")

	// duplicates are appended, never replaced
	require.NoError(t, g.AppendTransition(0, tr, q))
	require.NoError(t, g.AppendTransition(0, tr, q))
	require.NoError(t, g.AppendTransition(0, tr, domain.AcceptingIndex))

	between, err := g.TransitionsBetween(0, q)
	require.NoError(t, err)
	assert.Len(t, between, 2)
	assert.Equal(t, 3, s.NumTransitions())

	_, err = s.Transition(3)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestGraph_RemoveTransitions(t *testing.T) {
	g, err := domain.NewGraph(1)
	require.NoError(t, err)
	q := g.AddState("q")
	tr := mustRule(t, []string{"ç", "ç"}, []string{"ç"}, []string{"R", "R"})
	require.NoError(t, g.AppendTransition(0, tr, q))
	require.NoError(t, g.AppendTransition(0, tr, domain.AcceptingIndex))
	require.NoError(t, g.AppendTransition(0, tr, q))

	n, err := g.RemoveTransitions(0, q)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	s, _ := g.State(0)
	require.Equal(t, 1, s.NumTransitions())
	left, _ := s.Transition(0)
	target, _ := left.Target()
	assert.Equal(t, domain.AcceptingIndex, target)

	_, err = g.RemoveTransitions(0, 42)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestGraph_RemoveReservedState(t *testing.T) {
	g, err := domain.NewGraph(1)
	require.NoError(t, err)
	for i := 0; i <= domain.RejectingIndex; i++ {
		assert.ErrorIs(t, g.RemoveState(i), domain.ErrIllegalAction)
	}
	assert.ErrorIs(t, g.RemoveStateByName("a"), domain.ErrIllegalAction)
	assert.ErrorIs(t, g.RemoveStateByName("missing"), domain.ErrUnknownState)
	assert.ErrorIs(t, g.RemoveState(3), domain.ErrOutOfRange)
	assert.Equal(t, 3, g.Len())
}

func TestGraph_RemoveStateRenumbers(t *testing.T) {
	g, err := domain.NewGraph(1)
	require.NoError(t, err)
	x := g.AddState("X")
	y := g.AddState("Y")
	z := g.AddState("Z")
	require.Equal(t, []int{3, 4, 5}, []int{x, y, z})

	tr := mustRule(t, []string{"a", "_"}, []string{"b"}, []string{"R", "R"})
	require.NoError(t, g.AppendTransition(0, tr, x))
	require.NoError(t, g.AppendTransition(x, tr, y))
	require.NoError(t, g.AppendTransition(y, tr, z))
	require.NoError(t, g.AppendTransition(y, tr, domain.AcceptingIndex))
	require.NoError(t, g.AppendTransition(y, tr, x))
	require.NoError(t, g.AppendTransition(z, tr, y))

	require.NoError(t, g.RemoveState(x))

	require.Equal(t, 5, g.Len())
	newY, err := g.Index("Y")
	require.NoError(t, err)
	newZ, err := g.Index("Z")
	require.NoError(t, err)
	assert.Equal(t, 3, newY)
	assert.Equal(t, 4, newZ)
	_, err = g.Index("X")
	assert.ErrorIs(t, err, domain.ErrUnknownState)

	toZ, err := g.TransitionsBetween(newY, newZ)
	require.NoError(t, err)
	assert.Len(t, toZ, 1)
	toA, err := g.TransitionsBetween(newY, domain.AcceptingIndex)
	require.NoError(t, err)
	assert.Len(t, toA, 1)
	toY, err := g.TransitionsBetween(newZ, newY)
	require.NoError(t, err)
	assert.Len(t, toY, 1)

	// transitions into X are gone
	sY, _ := g.State(newY)
	assert.Equal(t, 2, sY.NumTransitions())
	sI, _ := g.State(0)
	assert.Equal(t, 0, sI.NumTransitions())

	assertConsistent(t, g)
}
