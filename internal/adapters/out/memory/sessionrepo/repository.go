// Package sessionrepo keeps live drive-through sessions in process memory.
// Sessions are short-lived and owned by one lane, so nothing here survives a restart;
// ended sessions go to the order archive instead.
package sessionrepo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/pkg/errs"
)

type slot struct {
	mu      sync.RWMutex
	session *session.Session
	deleted bool
}

// Repository implements ports.SessionRepository. Calls on different sessions run in
// parallel; calls on the same session are serialized, readers sharing the lock.
// fn passed to View, Update or Remove must not call back into the repository for the same
// session.
type Repository struct {
	mu    sync.RWMutex
	slots map[kernel.UUID]*slot
}

func NewRepository() *Repository {
	return &Repository{slots: make(map[kernel.UUID]*slot)}
}

// Add stores s under its ID.
func (r *Repository) Add(ctx context.Context, s *session.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slots[s.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"session",
			fmt.Errorf("session %s already exists", s.ID()),
		)
	}
	r.slots[s.ID()] = &slot{session: s}
	return nil
}

// View runs fn under the session's read lock.
func (r *Repository) View(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error {
	sl, err := r.slot(ctx, id)
	if err != nil {
		return err
	}

	sl.mu.RLock()
	defer sl.mu.RUnlock()

	if sl.deleted {
		return errs.NewObjectNotFoundError("session", id.String())
	}
	return fn(sl.session)
}

// Update runs fn under the session's write lock.
func (r *Repository) Update(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error {
	sl, err := r.slot(ctx, id)
	if err != nil {
		return err
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()

	if sl.deleted {
		return errs.NewObjectNotFoundError("session", id.String())
	}
	return fn(sl.session)
}

// Remove runs fn under the session's write lock and drops the session without
// releasing the lock in between. Calls waiting on the lock then see ObjectNotFound.
func (r *Repository) Remove(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error {
	sl, err := r.slot(ctx, id)
	if err != nil {
		return err
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()

	if sl.deleted {
		return errs.NewObjectNotFoundError("session", id.String())
	}
	if err = fn(sl.session); err != nil {
		return err
	}

	sl.deleted = true
	r.mu.Lock()
	if r.slots[id] == sl {
		delete(r.slots, id)
	}
	r.mu.Unlock()
	return nil
}

// IdleSince lists sessions whose last activity is before cutoff, oldest first.
func (r *Repository) IdleSince(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	slots := make([]*slot, 0, len(r.slots))
	for _, sl := range r.slots {
		slots = append(slots, sl)
	}
	r.mu.RUnlock()

	type idle struct {
		id   kernel.UUID
		last time.Time
	}
	var found []idle
	for _, sl := range slots {
		sl.mu.RLock()
		if !sl.deleted && sl.session.IsIdleSince(cutoff) {
			found = append(found, idle{id: sl.session.ID(), last: sl.session.LastActivity()})
		}
		sl.mu.RUnlock()
	}

	slices.SortFunc(found, func(a, b idle) int {
		return a.last.Compare(b.last)
	})

	ids := make([]kernel.UUID, len(found))
	for i, f := range found {
		ids[i] = f.id
	}
	return ids, nil
}

// Len returns the number of live sessions.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

func (r *Repository) slot(ctx context.Context, id kernel.UUID) (*slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	sl, ok := r.slots[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}
	return sl, nil
}
