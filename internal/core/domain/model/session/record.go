package session

import (
	"time"

	"drivethrough/internal/core/domain/model/kernel"
)

// RecordLine is one order line as it stood when the session ended.
type RecordLine struct {
	ItemName  string
	Quantity  int
	UnitPrice kernel.Money
	LineTotal kernel.Money
}

// RecordEntry is one history entry in archived form.
type RecordEntry struct {
	Sequence   uint64
	Intents    string
	Total      kernel.Money
	RecordedAt time.Time
}

// Record is the archived form of an ended session.
type Record struct {
	SessionID kernel.UUID
	Outcome   Outcome
	Lines     []RecordLine
	Entries   []RecordEntry
	Total     kernel.Money
	Turns     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Close builds the archive record for the session ending with outcome. The session
// itself is left untouched; dropping it is up to the repository.
func (s *Session) Close(outcome Outcome) (Record, error) {
	if err := s.Validate(); err != nil {
		return Record{}, err
	}
	if err := outcome.Validate(); err != nil {
		return Record{}, err
	}

	rec := Record{
		SessionID: s.id,
		Outcome:   outcome,
		Total:     s.order.Total(),
		Turns:     len(s.transcript),
		StartedAt: s.startedAt,
		EndedAt:   s.now().UTC(),
	}
	for _, l := range s.order.Lines() {
		rec.Lines = append(rec.Lines, RecordLine{
			ItemName:  l.ItemName(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice(),
			LineTotal: l.Total(),
		})
	}
	for e := range s.history.Entries() {
		rec.Entries = append(rec.Entries, RecordEntry{
			Sequence:   e.Sequence(),
			Intents:    e.Intents().String(),
			Total:      e.Snapshot().Total(),
			RecordedAt: e.RecordedAt(),
		})
	}
	return rec, nil
}
