package session

import (
	"errors"
	"time"

	"drivethrough/internal/core/domain/model/history"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/pkg/guard"
)

var (
	// ErrSessionIsNotConstructed is returned when using a Session not created via NewSession.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
)

// Session is the aggregate root of one drive-through conversation.
//
// Business rules:
//   - The order changes only through Commit, and every commit adds one history entry
//   - The transcript is append-only until Reset
//   - lastActivity moves forward on every commit and turn
//
// Example usage:
//
//	s, err := NewSession(kernel.NewUUID(), time.Now)
//	if err != nil {
//	    // Handle construction error
//	}
//	_ = s.AddTurn(Customer, "two big macs please")
type Session struct {
	// id uniquely identifies the session
	id kernel.UUID
	// order is the current cart snapshot
	order *order.Order
	// history holds every accepted batch
	history *history.History
	// transcript is the conversation so far
	transcript []Turn

	startedAt    time.Time
	lastActivity time.Time
	now          func() time.Time

	guard guard.ConstructorGuard
}

// NewSession opens a session with an empty order. now is used for every timestamp
// the session and its history produce.
func NewSession(id kernel.UUID, now func() time.Time) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}

	started := now().UTC()
	return &Session{
		id:           id,
		order:        order.Empty(),
		history:      history.New(history.WithClock(now)),
		startedAt:    started,
		lastActivity: started,
		now:          now,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the session was created via NewSession.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the session identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Order returns the current order snapshot.
func (s *Session) Order() *order.Order {
	return s.order
}

// History returns the session history. Callers must not Record into it directly.
func (s *Session) History() *history.History {
	return s.history
}

// StartedAt returns when the session was opened.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// LastActivity returns the time of the latest commit or turn.
func (s *Session) LastActivity() time.Time {
	return s.lastActivity
}

// Commit records batch in history and makes next the current order.
func (s *Session) Commit(batch intent.Batch, next *order.Order) (history.Entry, error) {
	entry, err := s.history.Record(batch, next)
	if err != nil {
		return history.Entry{}, err
	}
	s.order = next
	s.touch()
	return entry, nil
}

// AddTurn appends a transcript turn.
func (s *Session) AddTurn(role Role, content string) error {
	turn, err := NewTurn(role, content, s.now())
	if err != nil {
		return err
	}
	s.transcript = append(s.transcript, turn)
	s.touch()
	return nil
}

// Transcript returns a copy of every turn, oldest first.
func (s *Session) Transcript() []Turn {
	out := make([]Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// RecentTurns returns up to n of the latest turns, oldest first.
func (s *Session) RecentTurns(n int) []Turn {
	if n <= 0 {
		return nil
	}
	start := max(len(s.transcript)-n, 0)
	out := make([]Turn, len(s.transcript)-start)
	copy(out, s.transcript[start:])
	return out
}

// Reset empties the order, the history and the transcript. History numbering
// carries on from where it was.
func (s *Session) Reset() {
	s.order = order.Empty()
	s.history.Reset()
	s.transcript = nil
	s.touch()
}

// IsIdleSince reports whether nothing happened at or after cutoff.
func (s *Session) IsIdleSince(cutoff time.Time) bool {
	return s.lastActivity.Before(cutoff)
}

func (s *Session) touch() {
	s.lastActivity = s.now().UTC()
}
