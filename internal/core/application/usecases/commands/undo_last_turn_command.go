package commands

import (
	"errors"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/guard"
)

var ErrUndoLastTurnCommandIsNotConstructed = errors.New(
	"UndoLastTurnCommand must be created via NewUndoLastTurnCommand constructor",
)

// UndoLastTurnCommand reverts the most recent accepted batch of a session.
type UndoLastTurnCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUndoLastTurnCommand(sessionID kernel.UUID) (UndoLastTurnCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return UndoLastTurnCommand{}, err
	}

	return UndoLastTurnCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UndoLastTurnCommand) Validate() error {
	return c.guard.Validate(ErrUndoLastTurnCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c UndoLastTurnCommand) SessionID() kernel.UUID {
	return c.sessionID
}
