package commands

import (
	"errors"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand opens a new ordering session at the window.
//
// Example:
//
//	sessionID := kernel.NewUUID()
//	cmd, err := NewStartSessionCommand(sessionID)
//	if err != nil {
//	    return fmt.Errorf("invalid session: %w", err)
//	}
//
//	handler := NewStartSessionCommandHandler(sessions, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start session: %w", err)
//	}
type StartSessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartSessionCommand creates a command to open the session sessionID.
func NewStartSessionCommand(sessionID kernel.UUID) (StartSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return StartSessionCommand{}, err
	}

	return StartSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

// SessionID returns the identifier of the session to open.
func (c StartSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
