package history

import (
	"errors"
	"iter"
	"time"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/pkg/errs"
)

var (
	// ErrHistoryIsNotConstructed is returned when a History was not created via New.
	ErrHistoryIsNotConstructed = errors.New("history must be created via New")
)

// Entry is one accepted batch and the order it produced.
type Entry struct {
	sequence   uint64
	intents    intent.Batch
	snapshot   *order.Order
	recordedAt time.Time
}

// Sequence returns the strictly increasing entry number.
func (e Entry) Sequence() uint64 {
	return e.sequence
}

// Intents returns a copy of the batch.
func (e Entry) Intents() intent.Batch {
	return e.intents.Clone()
}

// Snapshot returns the order after the batch was applied.
func (e Entry) Snapshot() *order.Order {
	return e.snapshot
}

// RecordedAt returns when the entry was appended.
func (e Entry) RecordedAt() time.Time {
	return e.recordedAt
}

// Option configures a History.
type Option func(*History)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		h.now = now
	}
}

// History is the append-only log of one session. It is not safe for concurrent use;
// the owning session is guarded by its repository.
type History struct {
	entries []Entry
	next    uint64
	now     func() time.Time
}

// New creates an empty history.
func New(opts ...Option) *History {
	h := &History{next: 1, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Validate ensures the history was created via New.
func (h *History) Validate() error {
	if h == nil || h.next == 0 {
		return ErrHistoryIsNotConstructed
	}
	return nil
}

// Record appends batch together with the order it produced and returns the new entry.
// Entries are never modified or removed afterwards, except by Reset.
func (h *History) Record(batch intent.Batch, snapshot *order.Order) (Entry, error) {
	if err := h.Validate(); err != nil {
		return Entry{}, err
	}
	if len(batch) == 0 {
		return Entry{}, errs.NewValueIsRequiredError("intents")
	}
	if err := snapshot.Validate(); err != nil {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("snapshot", err)
	}

	e := Entry{
		sequence:   h.next,
		intents:    batch.Clone(),
		snapshot:   snapshot,
		recordedAt: h.now().UTC(),
	}
	h.entries = append(h.entries, e)
	h.next++
	return e, nil
}

// Entries yields the entries oldest first.
func (h *History) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range h.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Latest returns the most recent entry.
func (h *History) Latest() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Reset drops all entries. Sequence numbering continues where it left off.
func (h *History) Reset() {
	h.entries = nil
}
