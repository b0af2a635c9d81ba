package services

import (
	"errors"
	"fmt"
	"iter"

	"drivethrough/internal/core/domain/model/history"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/order"
)

// ErrHistoryDiverged is the sentinel behind every HistoryDivergedError.
var ErrHistoryDiverged = errors.New("history replay diverged")

// HistoryDivergedError names the first entry whose re-applied batch did not
// reproduce the recorded snapshot. Cause is set when the batch failed outright.
type HistoryDivergedError struct {
	Sequence uint64
	Cause    error
}

func (e *HistoryDivergedError) Error() string {
	msg := fmt.Sprintf("%s at entry %d", ErrHistoryDiverged, e.Sequence)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *HistoryDivergedError) Unwrap() error {
	return ErrHistoryDiverged
}

// Replay re-applies every batch of entries, oldest first, starting from the empty
// order, and checks each result against the recorded snapshot. It returns the
// final order, which is the empty order when entries yields nothing.
func (m OrderStateMachine) Replay(entries iter.Seq[history.Entry]) (*order.Order, error) {
	current := order.Empty()
	for e := range entries {
		next, _, err := m.Apply(current, e.Intents())
		if err != nil {
			return nil, &HistoryDivergedError{Sequence: e.Sequence(), Cause: err}
		}
		if !next.Equal(e.Snapshot()) {
			return nil, &HistoryDivergedError{Sequence: e.Sequence()}
		}
		current = next
	}
	return current, nil
}

// RevertBatch builds the batch that turns current into target: Clear followed by one
// SetQuantity per target line, in target order. It returns nil when both orders are
// already equal.
func RevertBatch(current, target *order.Order) intent.Batch {
	if current.Equal(target) {
		return nil
	}

	lines := target.Lines()
	batch := make(intent.Batch, 0, len(lines)+1)
	batch = append(batch, intent.NewClear())
	for _, l := range lines {
		batch = append(batch, intent.NewSetQuantity(l.ItemName(), l.Quantity()))
	}
	return batch
}
