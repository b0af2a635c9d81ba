package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
	"drivethrough/internal/pkg/errs"
)

// ExpiryReport counts what one expiry run did. Abandoned counts the expired
// sessions that still had items.
type ExpiryReport struct {
	Expired   int
	Abandoned int
}

// ExpireIdleSessionsCommandHandler sweeps idle sessions out of the live store.
type ExpireIdleSessionsCommandHandler struct {
	sessions   ports.SessionRepository
	uowFactory ArchiveUoWFactory
	engine     OrderEngine
	now        Clock
}

func NewExpireIdleSessionsCommandHandler(
	sessions ports.SessionRepository,
	uowFactory ArchiveUoWFactory,
	engine OrderEngine,
	now Clock,
) ExpireIdleSessionsCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ExpireIdleSessionsCommandHandler{
		sessions:   sessions,
		uowFactory: uowFactory,
		engine:     engine,
		now:        now,
	}
}

// Handle expires every idle session. A failure on one session does not stop the
// others; all failures are joined into the returned error.
func (h *ExpireIdleSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireIdleSessionsCommand) (ExpiryReport, error) {
	if err := cmd.Validate(); err != nil {
		return ExpiryReport{}, err
	}

	cutoff := h.now().Add(-cmd.IdleFor())
	ids, err := h.sessions.IdleSince(ctx, cutoff)
	if err != nil {
		return ExpiryReport{}, err
	}

	var (
		report   ExpiryReport
		failures []error
	)
	for _, id := range ids {
		abandoned, err := h.expire(ctx, id, cutoff)
		switch {
		case errors.Is(err, ErrSessionIsActive), errors.Is(err, errs.ErrObjectNotFound):
			continue
		case err != nil:
			failures = append(failures, fmt.Errorf("session %s: %w", id, err))
			continue
		}

		report.Expired++
		if abandoned {
			report.Abandoned++
		}
	}

	return report, errors.Join(failures...)
}

func (h *ExpireIdleSessionsCommandHandler) expire(ctx context.Context, id kernel.UUID, cutoff time.Time) (bool, error) {
	var (
		rec       session.Record
		abandoned bool
	)
	err := h.sessions.Remove(ctx, id, func(s *session.Session) error {
		if !s.IsIdleSince(cutoff) {
			return ErrSessionIsActive
		}
		if s.Order().IsEmpty() {
			return nil
		}

		var err error
		if rec, err = s.Close(session.Abandoned); err != nil {
			return err
		}
		if err = archive(ctx, h.uowFactory, rec); err != nil {
			return err
		}
		abandoned = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if abandoned {
		h.engine.publish(ctx, recordEvent(ports.OrderAbandoned, rec))
	}
	return abandoned, nil
}
