package queries

import (
	"errors"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/services"
	"drivethrough/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery reads the current order of one session as a display summary.
type GetOrderSummaryQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderSummaryQuery(sessionID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

func (q GetOrderSummaryQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetOrderSummaryQueryResponse is the summary plus the sequence number of the
// history entry that produced it. Sequence is 0 before the first accepted batch.
type GetOrderSummaryQueryResponse struct {
	SessionID kernel.UUID
	Sequence  uint64
	Summary   services.OrderSummary
}
