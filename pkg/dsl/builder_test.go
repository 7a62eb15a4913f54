package dsl

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/pkg/domain"
)

func TestBuilder_CopyMachine(t *testing.T) {
	b := New(1)

	b.State("i").
		On("ç", "ç").Move("R").Write("ç", "R").Go("q1")

	b.State("q1").
		On("a", "_").Move("R").Write("a", "R").Go("q1").
		Rule("$,_ -> N,_,N", "a")

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if g.K() != 1 {
		t.Errorf("Expected 1 writing tape, got %d", g.K())
	}

	idx, q1, err := g.StateByName("q1")
	if err != nil {
		t.Fatalf("StateByName('q1') failed: %v", err)
	}
	if idx != 3 {
		t.Errorf("Expected q1 at index 3, got %d", idx)
	}
	if q1.NumTransitions() != 2 {
		t.Errorf("Expected 2 transitions on q1, got %d", q1.NumTransitions())
	}

	m, err := ribbon.FromGraph(g)
	if err != nil {
		t.Fatalf("FromGraph failed: %v", err)
	}
	ok, err := m.Accepts(context.Background(), "aa")
	if err != nil {
		t.Fatalf("Accepts failed: %v", err)
	}
	if !ok {
		t.Error("Expected the copy machine to accept 'aa'")
	}
}

func TestBuilder_StateOrder(t *testing.T) {
	b := New(1)
	b.State("z").State("y").Rule("ç,ç -> N,ç,N", "x")

	def := b.Definition()
	want := []string{"z", "y"}
	if len(def.States) != len(want) {
		t.Fatalf("Expected states %v, got %v", want, def.States)
	}
	for i := range want {
		if def.States[i] != want[i] {
			t.Errorf("Expected state %d to be %q, got %q", i, want[i], def.States[i])
		}
	}

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if idx, _ := g.Index("x"); idx != 5 {
		t.Errorf("Expected target x to be created last at 5, got %d", idx)
	}
}

func TestBuilder_InvalidRule(t *testing.T) {
	b := New(1)
	b.State("i").On("ç", "ç").Move("L").Write("ç", "R").Go("a")

	_, err := b.Build()
	if !errors.Is(err, domain.ErrIllegalAction) {
		t.Errorf("Expected ErrIllegalAction, got %v", err)
	}
}

func TestBuilder_WrongArity(t *testing.T) {
	b := New(2)
	b.State("i").On("ç", "ç").Move("R").Write("ç", "R").Go("a")

	_, err := b.Build()
	if !errors.Is(err, domain.ErrIncompatibleTransition) {
		t.Errorf("Expected ErrIncompatibleTransition, got %v", err)
	}
}
