package commands

import (
	"context"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
)

// CheckoutSessionCommandHandler ends a session with a confirmed order: the session
// is archived as checked out and dropped from the live store.
//
// Example:
//
//	handler := NewCheckoutSessionCommandHandler(sessions, uowFactory, engine)
//	cmd, _ := NewCheckoutSessionCommand(sessionID)
//
//	rec, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderIsEmpty) {
//	    // Nothing to check out yet
//	}
//	fmt.Printf("Total due: %s", rec.Total)
type CheckoutSessionCommandHandler struct {
	sessions   ports.SessionRepository
	uowFactory ArchiveUoWFactory
	engine     OrderEngine
}

// NewCheckoutSessionCommandHandler creates the handler. A nil uowFactory skips
// archiving.
func NewCheckoutSessionCommandHandler(
	sessions ports.SessionRepository,
	uowFactory ArchiveUoWFactory,
	engine OrderEngine,
) CheckoutSessionCommandHandler {
	return CheckoutSessionCommandHandler{
		sessions:   sessions,
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle archives the session and removes it in one step, so no turn lands on a
// session that is already archived. The session stays live when the archive write
// fails, so checkout can be retried.
func (h *CheckoutSessionCommandHandler) Handle(ctx context.Context, cmd CheckoutSessionCommand) (session.Record, error) {
	if err := cmd.Validate(); err != nil {
		return session.Record{}, err
	}

	var rec session.Record
	err := h.sessions.Remove(ctx, cmd.SessionID(), func(s *session.Session) error {
		if s.Order().IsEmpty() {
			return ErrOrderIsEmpty
		}

		var err error
		if rec, err = s.Close(session.CheckedOut); err != nil {
			return err
		}

		return archive(ctx, h.uowFactory, rec)
	})
	if err != nil {
		return session.Record{}, err
	}

	h.engine.publish(ctx, recordEvent(ports.OrderCheckedOut, rec))
	return rec, nil
}
