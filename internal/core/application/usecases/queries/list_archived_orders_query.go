package queries

import (
	"errors"
	"time"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/pkg/errs"
	"drivethrough/internal/pkg/guard"
)

var (
	ErrListArchivedOrdersQueryIsNotConstructed = errors.New(
		"ListArchivedOrdersQuery must be created via NewListArchivedOrdersQuery constructor",
	)
)

const (
	defaultArchiveListLimit = 20
	maxArchiveListLimit     = 100
)

// ListArchivedOrdersQuery lists the most recently ended sessions, newest first.
// An empty outcome lists every outcome; a zero limit uses the default page size.
//
// Example:
//
//	query, err := NewListArchivedOrdersQuery(session.Abandoned, 10)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewListArchivedOrdersQueryHandler(db).Handle(ctx, query)
type ListArchivedOrdersQuery struct {
	outcome session.Outcome
	limit   int

	guard guard.ConstructorGuard
}

func NewListArchivedOrdersQuery(outcome session.Outcome, limit int) (ListArchivedOrdersQuery, error) {
	var err error
	if outcome != "" {
		if vErr := outcome.Validate(); vErr != nil {
			err = errors.Join(err, vErr)
		}
	}
	if limit < 0 || limit > maxArchiveListLimit {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxArchiveListLimit))
	}
	if err != nil {
		return ListArchivedOrdersQuery{}, err
	}

	if limit == 0 {
		limit = defaultArchiveListLimit
	}

	return ListArchivedOrdersQuery{
		outcome: outcome,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListArchivedOrdersQueryIsNotConstructed)
}

func (q ListArchivedOrdersQuery) Outcome() session.Outcome {
	return q.outcome
}

func (q ListArchivedOrdersQuery) Limit() int {
	return q.limit
}

// ListArchivedOrdersQueryResponse is one archived order without its lines and history.
type ListArchivedOrdersQueryResponse struct {
	SessionID kernel.UUID
	Outcome   session.Outcome
	Items     int
	Total     kernel.Money
	Turns     int
	StartedAt time.Time
	EndedAt   time.Time
}
