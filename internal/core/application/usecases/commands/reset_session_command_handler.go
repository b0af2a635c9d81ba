package commands

import (
	"context"
	"time"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/domain/services"
	"drivethrough/internal/core/ports"
)

// ResetSessionCommandHandler clears a session, like the "Clear Order" button at the
// window.
type ResetSessionCommandHandler struct {
	sessions ports.SessionRepository
	engine   OrderEngine
	now      Clock
}

func NewResetSessionCommandHandler(sessions ports.SessionRepository, engine OrderEngine, now Clock) ResetSessionCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ResetSessionCommandHandler{sessions: sessions, engine: engine, now: now}
}

// Handle empties the order, the history and the transcript.
func (h *ResetSessionCommandHandler) Handle(ctx context.Context, cmd ResetSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var summary services.OrderSummary
	err := h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		s.Reset()
		var err error
		summary, err = services.Summarize(s.Order())
		return err
	})
	if err != nil {
		return err
	}

	h.engine.publish(ctx, newOrderEvent(ports.OrderUpdated, cmd.SessionID(), summary, h.now()))
	return nil
}
