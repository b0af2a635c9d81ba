package queries

import (
	"errors"
	"time"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery lists every accepted batch of a session, oldest first.
type GetOrderHistoryQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(sessionID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetOrderHistoryQueryResponse is one history entry. Intents is the rendered batch,
// Total the order total right after it was applied.
type GetOrderHistoryQueryResponse struct {
	Sequence   uint64
	Intents    string
	Items      int
	Total      kernel.Money
	RecordedAt time.Time
}
