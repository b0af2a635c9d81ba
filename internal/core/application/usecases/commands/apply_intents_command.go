package commands

import (
	"errors"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/errs"
	"drivethrough/internal/pkg/guard"
)

var ErrApplyIntentsCommandIsNotConstructed = errors.New(
	"ApplyIntentsCommand must be created via NewApplyIntentsCommand constructor",
)

// ApplyIntentsCommand applies an already structured batch, bypassing the intent
// producer. Intents are still validated by the state machine.
type ApplyIntentsCommand struct {
	sessionID kernel.UUID
	intents   intent.Batch

	guard guard.ConstructorGuard
}

// NewApplyIntentsCommand copies the batch, which must hold at least one intent.
func NewApplyIntentsCommand(sessionID kernel.UUID, intents intent.Batch) (ApplyIntentsCommand, error) {
	var problems []error
	if err := sessionID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if len(intents) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("intents"))
	}
	if err := errors.Join(problems...); err != nil {
		return ApplyIntentsCommand{}, err
	}

	return ApplyIntentsCommand{
		sessionID: sessionID,
		intents:   intents.Clone(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyIntentsCommand) Validate() error {
	return c.guard.Validate(ErrApplyIntentsCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c ApplyIntentsCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Intents returns a copy of the batch.
func (c ApplyIntentsCommand) Intents() intent.Batch {
	return c.intents.Clone()
}
