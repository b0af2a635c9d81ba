// Package ports defines the contracts between the drive-through core and its
// adapters: session storage, the intent producer, the order archive and the event
// publisher. Adapters implement them; use cases depend only on these interfaces.
package ports

import (
	"context"
	"time"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
)

// SessionRepository stores live sessions. Each session is a single-writer
// aggregate: View and Update run fn while no other call touches the same session.
type SessionRepository interface {
	// Add stores a new session. Adding an existing ID fails.
	Add(ctx context.Context, s *session.Session) error

	// View runs fn with read access to the session.
	// Returns errs.ObjectNotFoundError when the session does not exist.
	View(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error

	// Update runs fn with exclusive access to the session. Changes made by fn are
	// kept even when fn returns an error, so fn must only mutate on success.
	// Returns errs.ObjectNotFoundError when the session does not exist.
	Update(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error

	// Remove runs fn with exclusive access to the session and drops the session when
	// fn returns nil, before any other call can see it. The session stays when fn fails.
	// Returns errs.ObjectNotFoundError when the session does not exist.
	Remove(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error

	// IdleSince lists sessions with no activity at or after cutoff.
	IdleSince(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error)
}
