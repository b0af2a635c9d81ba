package commands

import (
	"errors"
	"strings"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/errs"
	"drivethrough/internal/pkg/guard"
)

var (
	ErrApplyUtteranceCommandIsNotConstructed = errors.New(
		"ApplyUtteranceCommand must be created via NewApplyUtteranceCommand constructor",
	)
	ErrUtteranceIsRequired = errs.NewValueIsRequiredError("utterance")
)

// maxUtteranceLength bounds what is sent to the intent producer.
const maxUtteranceLength = 500

// ApplyUtteranceCommand carries one free-form customer utterance, such as
// "two big macs and remove one fry".
type ApplyUtteranceCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	utterance string

	guard guard.ConstructorGuard
}

// NewApplyUtteranceCommand validates the session ID and the trimmed utterance.
func NewApplyUtteranceCommand(sessionID kernel.UUID, utterance string) (ApplyUtteranceCommand, error) {
	cmd := ApplyUtteranceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setUtterance(utterance),
	); err != nil {
		return ApplyUtteranceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyUtteranceCommand) Validate() error {
	return c.guard.Validate(ErrApplyUtteranceCommandIsNotConstructed)
}

// SessionID returns the target session.
func (c ApplyUtteranceCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Utterance returns the trimmed utterance.
func (c ApplyUtteranceCommand) Utterance() string {
	return c.utterance
}

func (c *ApplyUtteranceCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}

func (c *ApplyUtteranceCommand) setUtterance(utterance string) error {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return ErrUtteranceIsRequired
	}
	if n := len([]rune(utterance)); n > maxUtteranceLength {
		return errs.NewValueIsOutOfRangeError("utterance length", n, 1, maxUtteranceLength)
	}

	c.utterance = utterance
	return nil
}
