package commands

import (
	"context"
	"time"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
)

// ApplyIntentsCommandHandler applies a structured batch to a session order. The
// transcript is left alone since no one spoke.
type ApplyIntentsCommandHandler struct {
	sessions ports.SessionRepository
	engine   OrderEngine
	now      Clock
}

func NewApplyIntentsCommandHandler(sessions ports.SessionRepository, engine OrderEngine, now Clock) ApplyIntentsCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ApplyIntentsCommandHandler{sessions: sessions, engine: engine, now: now}
}

// Handle applies the batch. A rejected batch returns the corrective reply together
// with the rejection error.
func (h *ApplyIntentsCommandHandler) Handle(ctx context.Context, cmd ApplyIntentsCommand) (TurnResult, error) {
	if err := cmd.Validate(); err != nil {
		return TurnResult{}, err
	}

	var (
		result    TurnResult
		rejection error
	)
	err := h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		batch := cmd.Intents()
		var err error
		if result, err = h.engine.apply(s, batch); err == nil {
			return nil
		}
		if !IsRejection(err) {
			return err
		}
		rejection = err
		result, err = h.engine.rejected(s, batch, err)
		return err
	})
	if err != nil {
		return TurnResult{}, err
	}

	h.engine.publishTurn(ctx, cmd.SessionID(), result, h.now())
	return result, rejection
}
