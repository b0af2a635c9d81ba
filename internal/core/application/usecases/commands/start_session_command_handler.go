package commands

import (
	"context"
	"time"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
)

// StartSessionCommandHandler stores a new empty session.
type StartSessionCommandHandler struct {
	sessions ports.SessionRepository
	now      Clock
}

// NewStartSessionCommandHandler creates a handler; now defaults to time.Now.
func NewStartSessionCommandHandler(sessions ports.SessionRepository, now Clock) StartSessionCommandHandler {
	if now == nil {
		now = time.Now
	}
	return StartSessionCommandHandler{sessions: sessions, now: now}
}

// Handle creates the session with an empty order and history.
func (h *StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := session.NewSession(cmd.SessionID(), h.now)
	if err != nil {
		return err
	}

	return h.sessions.Add(ctx, s)
}
