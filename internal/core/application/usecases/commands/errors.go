package commands

import (
	"errors"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/services"
	"drivethrough/internal/pkg/errs"
)

var (
	// ErrNothingToUndo is returned by UndoLastTurn on a session without history.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrOrderIsEmpty is returned when checking out a session with no lines.
	ErrOrderIsEmpty = errs.NewValueIsRequiredError("order lines")
	// ErrSessionIsActive is returned internally when an idle session saw activity
	// between listing and expiry.
	ErrSessionIsActive = errors.New("session is active")
)

// IsRejection reports whether err is a turn the customer can correct: a rejected
// batch or a producer that could not understand the utterance. Rejections come with
// a corrective reply and leave the order unchanged.
func IsRejection(err error) bool {
	return errors.Is(err, services.ErrBatchRejected) || errors.Is(err, intent.ErrParseFailure)
}
