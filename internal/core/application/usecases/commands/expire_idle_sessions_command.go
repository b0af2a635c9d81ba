package commands

import (
	"errors"
	"time"

	"drivethrough/internal/pkg/errs"
	"drivethrough/internal/pkg/guard"
)

var ErrExpireIdleSessionsCommandIsNotConstructed = errors.New(
	"ExpireIdleSessionsCommand must be created via NewExpireIdleSessionsCommand constructor",
)

// ExpireIdleSessionsCommand closes every session idle for at least idleFor.
// Sessions with items are archived as abandoned; empty ones are just dropped.
//
// Example:
//
//	cmd, _ := NewExpireIdleSessionsCommand(15 * time.Minute)
//	handler := NewExpireIdleSessionsCommandHandler(sessions, uowFactory, engine, time.Now)
//	report, err := handler.Handle(ctx, cmd)
type ExpireIdleSessionsCommand struct {
	idleFor time.Duration

	guard guard.ConstructorGuard
}

// NewExpireIdleSessionsCommand requires a positive idle duration.
func NewExpireIdleSessionsCommand(idleFor time.Duration) (ExpireIdleSessionsCommand, error) {
	if idleFor <= 0 {
		return ExpireIdleSessionsCommand{}, errs.NewValueIsInvalidError("idle duration")
	}

	return ExpireIdleSessionsCommand{
		idleFor: idleFor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireIdleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireIdleSessionsCommandIsNotConstructed)
}

// IdleFor returns the idle threshold.
func (c ExpireIdleSessionsCommand) IdleFor() time.Duration {
	return c.idleFor
}
