package history_test

import (
	"slices"
	"testing"
	"time"

	"drivethrough/internal/core/domain/model/history"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestHistory_Record(t *testing.T) {
	batch := intent.NewBatch(intent.NewAdd("Big Mac", 1))

	t.Run("should number entries from one", func(t *testing.T) {
		h := history.New(history.WithClock(fixedClock()))

		first, err := h.Record(batch, order.Empty())
		require.NoError(t, err)
		second, err := h.Record(batch, order.Empty())
		require.NoError(t, err)

		assert.Equal(t, uint64(1), first.Sequence())
		assert.Equal(t, uint64(2), second.Sequence())
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), first.RecordedAt())
	})

	t.Run("should copy the batch", func(t *testing.T) {
		h := history.New()
		mutable := intent.NewBatch(intent.NewAdd("Coke", 1))

		entry, err := h.Record(mutable, order.Empty())
		require.NoError(t, err)
		mutable[0] = intent.NewClear()

		assert.Equal(t, intent.Add, entry.Intents()[0].Kind())
	})

	t.Run("should reject empty batch", func(t *testing.T) {
		h := history.New()

		_, err := h.Record(nil, order.Empty())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, 0, h.Len())
	})

	t.Run("should reject missing snapshot", func(t *testing.T) {
		h := history.New()

		_, err := h.Record(batch, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value history", func(t *testing.T) {
		var h history.History

		_, err := h.Record(batch, order.Empty())

		require.ErrorIs(t, err, history.ErrHistoryIsNotConstructed)
	})
}

func TestHistory_Entries(t *testing.T) {
	t.Run("should yield entries oldest first", func(t *testing.T) {
		h := history.New()
		_, _ = h.Record(intent.NewBatch(intent.NewAdd("Big Mac", 1)), order.Empty())
		_, _ = h.Record(intent.NewBatch(intent.NewClear()), order.Empty())

		var sequences []uint64
		for e := range h.Entries() {
			sequences = append(sequences, e.Sequence())
		}

		assert.Equal(t, []uint64{1, 2}, sequences)
	})

	t.Run("should stop early", func(t *testing.T) {
		h := history.New()
		_, _ = h.Record(intent.NewBatch(intent.NewClear()), order.Empty())
		_, _ = h.Record(intent.NewBatch(intent.NewClear()), order.Empty())

		count := 0
		for range h.Entries() {
			count++
			break
		}

		assert.Equal(t, 1, count)
	})
}

func TestHistory_Reset(t *testing.T) {
	t.Run("should keep numbering after reset", func(t *testing.T) {
		h := history.New()
		_, _ = h.Record(intent.NewBatch(intent.NewClear()), order.Empty())
		_, _ = h.Record(intent.NewBatch(intent.NewClear()), order.Empty())

		h.Reset()
		entry, err := h.Record(intent.NewBatch(intent.NewClear()), order.Empty())

		require.NoError(t, err)
		assert.Equal(t, uint64(3), entry.Sequence())
		assert.Len(t, slices.Collect(h.Entries()), 1)
	})

	t.Run("should report latest entry", func(t *testing.T) {
		h := history.New()
		_, ok := h.Latest()
		assert.False(t, ok)

		_, _ = h.Record(intent.NewBatch(intent.NewClear()), order.Empty())
		latest, ok := h.Latest()

		assert.True(t, ok)
		assert.Equal(t, uint64(1), latest.Sequence())
	})
}
