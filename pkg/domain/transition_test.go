package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransition_Validation(t *testing.T) {
	tests := []struct {
		name    string
		reads   []string
		writes  []string
		moves   []string
		wantErr error
	}{
		{"Valid", []string{"ç", "ç"}, []string{"ç"}, []string{"R", "R"}, nil},
		{"No Directions", []string{}, []string{}, []string{}, domain.ErrTransitionArgs},
		{"Write Count", []string{"a", "b"}, []string{"x", "y"}, []string{"R", "R"}, domain.ErrTransitionArgs},
		{"Read Count", []string{"a"}, []string{"x"}, []string{"R", "R"}, domain.ErrTransitionArgs},
		{"Input Right Off End", []string{"$", "_"}, []string{"_"}, []string{"R", "N"}, domain.ErrIllegalAction},
		{"Input Left Off Start", []string{"ç", "ç"}, []string{"ç"}, []string{"L", "N"}, domain.ErrIllegalAction},
		{"Tape Left Off Start", []string{"a", "ç"}, []string{"ç"}, []string{"N", "L"}, domain.ErrIllegalAction},
		{"Overwrite Start", []string{"a", "ç"}, []string{"x"}, []string{"N", "R"}, domain.ErrIllegalAction},
		{"Introduce Start", []string{"a", "_"}, []string{"ç"}, []string{"N", "R"}, domain.ErrIllegalAction},
		{"Introduce End", []string{"a", "_"}, []string{"$"}, []string{"N", "R"}, domain.ErrIllegalAction},
		{"Input End Stay", []string{"$", "_"}, []string{"_"}, []string{"N", "N"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseTransition(tt.reads, tt.writes, tt.moves)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransition_String(t *testing.T) {
	tr, err := domain.ParseTransition([]string{"0", "_", "b"}, []string{"a", "c"}, []string{"R", "L", "N"})
	require.NoError(t, err)
	assert.Equal(t, "0,_,b -> R,a,L,c,N", tr.String())
	assert.Equal(t, 3, tr.Ribbons())
}

func TestTransition_EqualIgnoresTarget(t *testing.T) {
	tr, err := domain.ParseTransition([]string{"ç", "ç"}, []string{"ç"}, []string{"R", "R"})
	require.NoError(t, err)

	g, err := domain.NewGraph(1)
	require.NoError(t, err)
	require.NoError(t, g.AppendTransition(0, tr, 1))
	attached, err := g.TransitionsBetween(0, 1)
	require.NoError(t, err)
	require.Len(t, attached, 1)

	_, ok := tr.Target()
	assert.False(t, ok, "the caller's copy is never attached")
	target, ok := attached[0].Target()
	assert.True(t, ok)
	assert.Equal(t, 1, target)
	assert.True(t, tr.Equal(attached[0]))

	other, err := domain.ParseTransition([]string{"ç", "ç"}, []string{"ç"}, []string{"N", "R"})
	require.NoError(t, err)
	assert.False(t, tr.Equal(other))
}

func TestTransition_JSON(t *testing.T) {
	tr, err := domain.ParseTransition([]string{"0", "_"}, []string{"a"}, []string{"R", "R"})
	require.NoError(t, err)

	data, err := json.Marshal(tr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"read":["0","_"],"move":"R","write":[{"symbol":"a","move":"R"}]}`, string(data))

	var decoded domain.Transition
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, tr.Equal(decoded))

	err = json.Unmarshal([]byte(`{"read":["a","_"],"move":"R","write":[{"symbol":"ç","move":"R"}]}`), &decoded)
	assert.ErrorIs(t, err, domain.ErrIllegalAction)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]domain.Direction{"L": domain.Left, "r": domain.Right, "N": domain.Stay, "S": domain.Stay} {
		got, err := domain.ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := domain.ParseDirection("up")
	assert.ErrorIs(t, err, domain.ErrTransitionArgs)

	assert.Equal(t, -1, domain.Left.Delta())
	assert.Equal(t, 1, domain.Right.Delta())
	assert.Equal(t, 0, domain.Stay.Delta())
}

func TestParseSymbol(t *testing.T) {
	s, err := domain.ParseSymbol("ç")
	require.NoError(t, err)
	assert.Equal(t, domain.Start, s)

	s, err = domain.ParseSymbol("x")
	require.NoError(t, err)
	assert.False(t, s.IsMarker())
	assert.Equal(t, "x", s.String())

	_, err = domain.ParseSymbol("xy")
	assert.ErrorIs(t, err, domain.ErrTransitionArgs)
}
