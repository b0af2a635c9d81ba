package commands

import (
	"errors"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/guard"
)

var ErrCheckoutSessionCommandIsNotConstructed = errors.New(
	"CheckoutSessionCommand must be created via NewCheckoutSessionCommand constructor",
)

// CheckoutSessionCommand confirms the order, archives it and closes the session.
type CheckoutSessionCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCheckoutSessionCommand(sessionID kernel.UUID) (CheckoutSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CheckoutSessionCommand{}, err
	}

	return CheckoutSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutSessionCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutSessionCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c CheckoutSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
