package queries

import (
	"errors"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/guard"
)

var (
	ErrGetArchivedOrderQueryIsNotConstructed = errors.New(
		"GetArchivedOrderQuery must be created via NewGetArchivedOrderQuery constructor",
	)
)

// GetArchivedOrderQuery loads the archived record of an ended session.
type GetArchivedOrderQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetArchivedOrderQuery(sessionID kernel.UUID) (GetArchivedOrderQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetArchivedOrderQuery{}, err
	}

	return GetArchivedOrderQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArchivedOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrderQueryIsNotConstructed)
}

func (q GetArchivedOrderQuery) SessionID() kernel.UUID {
	return q.sessionID
}
