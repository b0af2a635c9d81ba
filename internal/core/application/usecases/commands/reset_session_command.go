package commands

import (
	"errors"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/guard"
)

var ErrResetSessionCommandIsNotConstructed = errors.New(
	"ResetSessionCommand must be created via NewResetSessionCommand constructor",
)

// ResetSessionCommand empties the order, the history and the transcript of a session.
type ResetSessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResetSessionCommand(sessionID kernel.UUID) (ResetSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return ResetSessionCommand{}, err
	}

	return ResetSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetSessionCommand) Validate() error {
	return c.guard.Validate(ErrResetSessionCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c ResetSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
