package services_test

import (
	"slices"
	"testing"

	"drivethrough/internal/core/domain/model/history"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStateMachine_Replay(t *testing.T) {
	m := newMachine(t)

	record := func(t *testing.T, h *history.History, current *order.Order, intents ...intent.Intent) *order.Order {
		t.Helper()
		batch := intent.NewBatch(intents...)
		next, _, err := m.Apply(current, batch)
		require.NoError(t, err)
		_, err = h.Record(batch, next)
		require.NoError(t, err)
		return next
	}

	t.Run("should reproduce final snapshot", func(t *testing.T) {
		h := history.New()
		current := record(t, h, order.Empty(), intent.NewAdd("Big Mac", 2))
		current = record(t, h, current, intent.NewAdd("Large Fry", 1), intent.NewRemove("Big Mac", 1))
		current = record(t, h, current, intent.NewSubstitute("Large Fry", "Coke", 1))

		replayed, err := m.Replay(h.Entries())

		require.NoError(t, err)
		assert.True(t, replayed.Equal(current))
	})

	t.Run("should return empty order for empty history", func(t *testing.T) {
		replayed, err := m.Replay(history.New().Entries())

		require.NoError(t, err)
		assert.True(t, replayed.IsEmpty())
	})

	t.Run("should detect a tampered snapshot", func(t *testing.T) {
		h := history.New()
		_, err := h.Record(intent.NewBatch(intent.NewAdd("Coke", 1)), order.Empty())
		require.NoError(t, err)

		_, err = m.Replay(h.Entries())

		var diverged *services.HistoryDivergedError
		require.ErrorAs(t, err, &diverged)
		assert.Equal(t, uint64(1), diverged.Sequence)
		assert.NoError(t, diverged.Cause)
	})

	t.Run("should detect a batch that no longer applies", func(t *testing.T) {
		h := history.New()
		_, err := h.Record(intent.NewBatch(intent.NewRemove("Coke", 1)), order.Empty())
		require.NoError(t, err)

		_, err = m.Replay(h.Entries())

		require.ErrorIs(t, err, services.ErrHistoryDiverged)
		var diverged *services.HistoryDivergedError
		require.ErrorAs(t, err, &diverged)
		assert.ErrorIs(t, diverged.Cause, order.ErrItemNotInOrder)
	})
}

func TestRevertBatch(t *testing.T) {
	m := newMachine(t)

	t.Run("should restore target through the state machine", func(t *testing.T) {
		target := mustApply(t, m, order.Empty(), intent.NewAdd("Big Mac", 1), intent.NewAdd("Coke", 2))
		current := mustApply(t, m, target, intent.NewAdd("Large Fry", 3), intent.NewRemove("Coke", 1))

		batch := services.RevertBatch(current, target)
		restored := mustApply(t, m, current, batch...)

		assert.Equal(t, intent.Clear, batch[0].Kind())
		assert.Len(t, batch, 3)
		assert.True(t, restored.Equal(target))
	})

	t.Run("should restore empty order with a single clear", func(t *testing.T) {
		current := mustApply(t, m, order.Empty(), intent.NewAdd("Coke", 1))

		batch := services.RevertBatch(current, order.Empty())

		assert.Equal(t, intent.NewBatch(intent.NewClear()), batch)
	})

	t.Run("should return nil when nothing differs", func(t *testing.T) {
		current := mustApply(t, m, order.Empty(), intent.NewAdd("Coke", 1))

		assert.Nil(t, services.RevertBatch(current, current))
	})

	t.Run("should undo through replay of earlier entries", func(t *testing.T) {
		h := history.New()
		first := intent.NewBatch(intent.NewAdd("Big Mac", 1))
		afterFirst, _, err := m.Apply(order.Empty(), first)
		require.NoError(t, err)
		_, err = h.Record(first, afterFirst)
		require.NoError(t, err)
		second := intent.NewBatch(intent.NewAdd("Coke", 1))
		afterSecond, _, err := m.Apply(afterFirst, second)
		require.NoError(t, err)
		_, err = h.Record(second, afterSecond)
		require.NoError(t, err)

		entries := slices.Collect(h.Entries())
		target, err := m.Replay(slices.Values(entries[:len(entries)-1]))
		require.NoError(t, err)
		undone := mustApply(t, m, afterSecond, services.RevertBatch(afterSecond, target)...)

		assert.True(t, undone.Equal(afterFirst))
	})
}
