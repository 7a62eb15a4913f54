package definition_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/pkg/definition"
	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const copyMachine = `
name: copy
ribbons: 1
transitions:
  - {from: i, to: q1, rule: "ç,ç -> R,ç,R"}
  - from: q1
    to: q1
    read: [a, _]
    move: R
    write:
      - {symbol: a, move: R}
  - {from: q1, to: a, rule: "$,_ -> N,_,N"}
`

func TestLoad_Build_Run(t *testing.T) {
	def, err := definition.Load(strings.NewReader(copyMachine))
	require.NoError(t, err)
	assert.Equal(t, "copy", def.Name)
	require.Len(t, def.Transitions, 3)

	g, err := definition.Build(def)
	require.NoError(t, err)
	assert.Equal(t, 1, g.K())
	assert.Equal(t, 4, g.Len())

	m, err := ribbon.FromGraph(g)
	require.NoError(t, err)
	trace, err := m.Run(context.Background(), "aaa")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, trace.Status)
	assert.Equal(t, "çaaa[$]", trace.Last().Input.String())
	assert.Equal(t, "çaaa[_]", trace.Last().Outputs[0].String())
}

func TestLoad_NumericSymbols(t *testing.T) {
	def, err := definition.Load(strings.NewReader(`
ribbons: 1
transitions:
  - from: i
    to: a
    read: [0, 1]
    move: N
    write: [{symbol: 1, move: N}]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, def.Transitions[0].Read)

	tr, err := def.Transitions[0].Transition()
	require.NoError(t, err)
	assert.Equal(t, "0,1 -> N,1,N", tr.String())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not a map", "- a\n- b\n"},
		{"unknown key", "ribbons: 1\ntapes: 2\n"},
		{"bad type", "ribbons: many\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := definition.Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, definition.ErrParse)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		def    definition.Definition
		target error
	}{
		{
			name:   "no ribbons",
			def:    definition.Definition{},
			target: domain.ErrIllegalAction,
		},
		{
			name: "malformed rule",
			def: definition.Definition{Ribbons: 1, Transitions: []definition.Rule{
				{From: "i", To: "a", Rule: "ç,ç R,ç,R"},
			}},
			target: domain.ErrTransitionArgs,
		},
		{
			name: "mixed forms",
			def: definition.Definition{Ribbons: 1, Transitions: []definition.Rule{
				{From: "i", To: "a", Rule: "ç,ç -> R,ç,R", Move: "R"},
			}},
			target: definition.ErrParse,
		},
		{
			name: "illegal marker write",
			def: definition.Definition{Ribbons: 1, Transitions: []definition.Rule{
				{From: "i", To: "a", Rule: "ç,_ -> R,ç,R"},
			}},
			target: domain.ErrIllegalAction,
		},
		{
			name: "wrong ribbon count",
			def: definition.Definition{Ribbons: 2, Transitions: []definition.Rule{
				{From: "i", To: "a", Rule: "ç,ç -> R,ç,R"},
			}},
			target: domain.ErrIncompatibleTransition,
		},
		{
			name: "empty state name",
			def: definition.Definition{Ribbons: 1, Transitions: []definition.Rule{
				{From: "", To: "a", Rule: "ç,ç -> R,ç,R"},
			}},
			target: domain.ErrIllegalAction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := definition.Build(&tt.def)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestBuild_InfersRibbons(t *testing.T) {
	g, err := definition.Build(&definition.Definition{Transitions: []definition.Rule{
		{From: "i", To: "a", Rule: "ç,ç,ç -> N,ç,N,ç,N"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.K())
}

func TestBuild_DeclaredStatesKeepOrder(t *testing.T) {
	g, err := definition.Build(&definition.Definition{Ribbons: 1, States: []string{"z", "y"}})
	require.NoError(t, err)

	idx, err := g.Index("z")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	idx, err = g.Index("y")
	require.NoError(t, err)
	assert.Equal(t, 4, idx)
}

func TestParseRule(t *testing.T) {
	tr, err := definition.ParseRule(" 0 , _ , b -> R, a ,L, c, N ")
	require.NoError(t, err)
	assert.Equal(t, "0,_,b -> R,a,L,c,N", tr.String())

	_, err = definition.ParseRule("a,_ -> R,a")
	assert.ErrorIs(t, err, domain.ErrTransitionArgs)
}

func TestFromGraph_RoundTrip(t *testing.T) {
	def, err := definition.Load(strings.NewReader(copyMachine))
	require.NoError(t, err)
	g, err := definition.Build(def)
	require.NoError(t, err)

	exported := definition.FromGraph(g)
	assert.Equal(t, []string{"q1"}, exported.States)
	require.Len(t, exported.Transitions, 3)
	assert.Equal(t, "q1", exported.Transitions[0].To)
	assert.Equal(t, []string{"ç", "ç"}, exported.Transitions[0].Read)

	var buf bytes.Buffer
	require.NoError(t, definition.Encode(&buf, exported))

	reloaded, err := definition.Load(&buf)
	require.NoError(t, err)
	g2, err := definition.Build(reloaded)
	require.NoError(t, err)
	assert.Equal(t, definition.FromGraph(g2), exported)
}

func TestFileSource(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "machines/copy.yaml", []byte(copyMachine), 0o644))

	src := definition.NewFileSource(fsys, "machines/copy.yaml")
	g, err := src.Graph(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())

	_, err = definition.NewFileSource(fsys, "missing.yaml").Graph(context.Background())
	assert.Error(t, err)
}
