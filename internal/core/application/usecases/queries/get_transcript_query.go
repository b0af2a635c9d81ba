package queries

import (
	"errors"
	"time"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/errs"
	"drivethrough/internal/pkg/guard"
)

var (
	ErrGetTranscriptQueryIsNotConstructed = errors.New(
		"GetTranscriptQuery must be created via NewGetTranscriptQuery constructor",
	)
)

const maxTranscriptLimit = 500

// GetTranscriptQuery reads the conversation of a session. A zero limit returns every turn,
// otherwise only the latest limit turns.
type GetTranscriptQuery struct {
	sessionID kernel.UUID
	limit     int

	guard guard.ConstructorGuard
}

func NewGetTranscriptQuery(sessionID kernel.UUID, limit int) (GetTranscriptQuery, error) {
	var err error
	if vErr := sessionID.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if limit < 0 || limit > maxTranscriptLimit {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxTranscriptLimit))
	}
	if err != nil {
		return GetTranscriptQuery{}, err
	}

	return GetTranscriptQuery{
		sessionID: sessionID,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTranscriptQuery) Validate() error {
	return q.guard.Validate(ErrGetTranscriptQueryIsNotConstructed)
}

func (q GetTranscriptQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q GetTranscriptQuery) Limit() int {
	return q.limit
}

// GetTranscriptQueryResponse is one turn of the conversation.
type GetTranscriptQueryResponse struct {
	Role    string
	Content string
	At      time.Time
}
