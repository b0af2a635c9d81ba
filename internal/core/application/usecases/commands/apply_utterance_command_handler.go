package commands

import (
	"context"
	"time"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
)

// contextTurns is how many earlier turns the intent producer sees besides the
// current utterance.
const contextTurns = 2

// ApplyUtteranceCommandHandler runs one conversational turn: the proposer derives
// intents from the utterance, the engine applies them all-or-nothing, and both the
// customer and the assistant turn are added to the transcript.
//
// Example:
//
//	handler := NewApplyUtteranceCommandHandler(sessions, proposer, engine, time.Now)
//	cmd, _ := NewApplyUtteranceCommand(sessionID, "two big macs please")
//
//	result, err := handler.Handle(ctx, cmd)
//	if IsRejection(err) {
//	    // result.Reply explains what went wrong; the order is unchanged
//	}
type ApplyUtteranceCommandHandler struct {
	sessions ports.SessionRepository
	proposer ports.IntentProposer
	engine   OrderEngine
	now      Clock
}

// NewApplyUtteranceCommandHandler creates the handler; now defaults to time.Now.
func NewApplyUtteranceCommandHandler(
	sessions ports.SessionRepository,
	proposer ports.IntentProposer,
	engine OrderEngine,
	now Clock,
) ApplyUtteranceCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ApplyUtteranceCommandHandler{
		sessions: sessions,
		proposer: proposer,
		engine:   engine,
		now:      now,
	}
}

// Handle processes the utterance.
//
// Returns:
//   - TurnResult with Accepted set and a confirmation reply on success
//   - TurnResult with a corrective reply and a rejection error (see IsRejection) when
//     the batch was rejected or the utterance could not be understood
//   - an error wrapping ports.ErrProposerUnavailable when the producer failed; the
//     customer turn stays in the transcript
func (h *ApplyUtteranceCommandHandler) Handle(ctx context.Context, cmd ApplyUtteranceCommand) (TurnResult, error) {
	if err := cmd.Validate(); err != nil {
		return TurnResult{}, err
	}

	var (
		result    TurnResult
		rejection error
	)
	err := h.sessions.Update(ctx, cmd.SessionID(), func(s *session.Session) error {
		req := ports.ProposalRequest{
			Menu:      h.engine.Machine().Catalog(),
			Order:     s.Order(),
			Utterance: cmd.Utterance(),
			Context:   s.RecentTurns(contextTurns),
		}
		if err := s.AddTurn(session.Customer, cmd.Utterance()); err != nil {
			return err
		}

		batch, err := h.proposer.Propose(ctx, req)
		if err == nil && len(batch) == 0 {
			err = intent.NewParseFailure(cmd.Utterance(), "no intents proposed")
		}
		if err == nil {
			result, err = h.engine.apply(s, batch)
		}
		if err != nil {
			if !IsRejection(err) {
				return err
			}
			rejection = err
			if result, err = h.engine.rejected(s, batch, err); err != nil {
				return err
			}
		}

		return s.AddTurn(session.Assistant, result.Reply)
	})
	if err != nil {
		return TurnResult{}, err
	}

	h.engine.publishTurn(ctx, cmd.SessionID(), result, h.now())
	return result, rejection
}
