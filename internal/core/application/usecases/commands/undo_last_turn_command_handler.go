package commands

import (
	"context"
	"slices"
	"time"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/domain/services"
	"drivethrough/internal/core/ports"
)

const replyUndone = "Undid your last change."

// UndoLastTurnCommandHandler reverts the latest history entry without rewriting
// history: it replays every earlier entry to find the previous order, then applies
// and records the batch that restores it. Undoing twice restores the undone change.
type UndoLastTurnCommandHandler struct {
	sessions ports.SessionRepository
	engine   OrderEngine
	now      Clock
}

func NewUndoLastTurnCommandHandler(sessions ports.SessionRepository, engine OrderEngine, now Clock) UndoLastTurnCommandHandler {
	if now == nil {
		now = time.Now
	}
	return UndoLastTurnCommandHandler{sessions: sessions, engine: engine, now: now}
}

// Handle returns ErrNothingToUndo for a session without history, and an error
// wrapping services.ErrHistoryDiverged if the log no longer replays.
func (h *UndoLastTurnCommandHandler) Handle(ctx context.Context, cmd UndoLastTurnCommand) (TurnResult, error) {
	if err := cmd.Validate(); err != nil {
		return TurnResult{}, err
	}

	var result TurnResult
	err := h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		entries := slices.Collect(s.History().Entries())
		if len(entries) == 0 {
			return ErrNothingToUndo
		}

		target, err := h.engine.Machine().Replay(slices.Values(entries[:len(entries)-1]))
		if err != nil {
			return err
		}

		batch := services.RevertBatch(s.Order(), target)
		if len(batch) == 0 {
			result, err = h.engine.unchanged(s)
			return err
		}

		if result, err = h.engine.apply(s, batch); err != nil {
			return err
		}
		result.Reply = replyUndone
		return nil
	})
	if err != nil {
		return TurnResult{}, err
	}

	if result.Sequence > 0 {
		h.engine.publishTurn(ctx, cmd.SessionID(), result, h.now())
	}
	return result, nil
}
