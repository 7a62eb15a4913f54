package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/ribbon/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTraceStoreContract runs a suite of tests to verify that a TraceStore implementation
// adheres to the defined interface contract.
func RunTraceStoreContract(t *testing.T, store TraceStore) {
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		trace := contractTrace("ab")

		err := store.Save(ctx, trace)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, trace.ID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, trace.ID, loaded.ID)
		assert.Equal(t, trace.Word, loaded.Word)
		assert.Equal(t, trace.Status, loaded.Status)
		require.Len(t, loaded.Steps, len(trace.Steps))
		assert.Equal(t, trace.Steps[0].Input, loaded.Steps[0].Input)
		assert.Equal(t, trace.Steps[1].String(), loaded.Steps[1].String())
		require.NotNil(t, loaded.Steps[1].BacktrackedTo)
		assert.Equal(t, 3, *loaded.Steps[1].BacktrackedTo)
		assert.True(t, trace.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		trace := contractTrace("ba")
		require.NoError(t, store.Save(ctx, trace))

		trace.Status = domain.StatusRejected
		require.NoError(t, store.Save(ctx, trace))

		loaded, err := store.Load(ctx, trace.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, loaded.Status)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+domain.NewTraceID())
		assert.ErrorIs(t, err, domain.ErrTraceNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		trace := contractTrace("a")
		require.NoError(t, store.Save(ctx, trace))

		err := store.Delete(ctx, trace.ID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, trace.ID)
		assert.ErrorIs(t, err, domain.ErrTraceNotFound, "Load after Delete should return ErrTraceNotFound")

		assert.NoError(t, store.Delete(ctx, trace.ID), "Delete should be idempotent")
	})

	t.Run("List", func(t *testing.T) {
		t1 := contractTrace("x")
		t2 := contractTrace("y")
		require.NoError(t, store.Save(ctx, t1))
		require.NoError(t, store.Save(ctx, t2))

		defer func() {
			_ = store.Delete(ctx, t1.ID)
			_ = store.Delete(ctx, t2.ID)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, t1.ID)
		assert.Contains(t, ids, t2.ID)
	})
}

// contractTrace builds a two-step trace by hand so stores are tested without an engine.
func contractTrace(word string) *domain.Trace {
	trace := domain.NewTrace(word)
	trace.Machine = "contract"
	trace.Status = domain.StatusAccepted
	trace.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	input := domain.NewInputTape()
	_ = input.Feed(domain.ParseWord(word))
	output := domain.NewOutputTape()

	trace.Steps = append(trace.Steps, domain.Step{
		State:     domain.InitialIndex,
		StateName: domain.InitialState,
		Input:     input.Snapshot(),
		Outputs:   []domain.TapeSnapshot{output.Snapshot()},
	})

	rule, _ := domain.NewTransition(
		[]domain.Symbol{domain.Start, domain.Start},
		[]domain.Symbol{domain.Start},
		[]domain.Direction{domain.Right, domain.Right},
	)
	_, _ = input.TryApply(domain.Start, domain.Start, domain.Right)
	_, _ = output.TryApply(domain.Start, domain.Start, domain.Right)
	from := 3
	trace.Steps = append(trace.Steps, domain.Step{
		State:         domain.AcceptingIndex,
		StateName:     domain.AcceptingState,
		Transition:    &domain.TakenTransition{From: from, Index: 0, Transition: rule},
		Input:         input.Snapshot(),
		Outputs:       []domain.TapeSnapshot{output.Snapshot()},
		BacktrackedTo: &from,
	})
	return trace
}
