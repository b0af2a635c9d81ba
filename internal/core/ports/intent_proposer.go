package ports

import (
	"context"
	"errors"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/core/domain/model/session"
)

// ErrProposerUnavailable wraps transport and provider failures of an IntentProposer,
// as opposed to *intent.ParseFailure, which means the producer answered but could
// not derive intents.
var ErrProposerUnavailable = errors.New("intent proposer unavailable")

// ProposalRequest is everything an intent producer may look at. Order is read-only.
type ProposalRequest struct {
	Menu      *menu.Catalog
	Order     *order.Order
	Utterance string
	// Context holds the latest turns before Utterance, oldest first.
	Context []session.Turn
}

// IntentProposer turns one customer utterance into an intent batch.
//
// Returns:
//   - intent.Batch: the proposed batch, not yet validated
//   - *intent.ParseFailure when no intent could be derived
//   - an error wrapping ErrProposerUnavailable when the producer could not be reached
type IntentProposer interface {
	Propose(ctx context.Context, req ProposalRequest) (intent.Batch, error)
}
