package queries

import (
	"context"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
)

type GetTranscriptQueryHandler struct {
	sessions ports.SessionRepository
}

func NewGetTranscriptQueryHandler(sessions ports.SessionRepository) GetTranscriptQueryHandler {
	return GetTranscriptQueryHandler{sessions: sessions}
}

// Handle returns the turns oldest first.
func (h GetTranscriptQueryHandler) Handle(
	ctx context.Context,
	query GetTranscriptQuery,
) ([]GetTranscriptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var turns []session.Turn
	err := h.sessions.View(ctx, query.SessionID(), func(s *session.Session) error {
		if query.Limit() > 0 {
			turns = s.RecentTurns(query.Limit())
		} else {
			turns = s.Transcript()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]GetTranscriptQueryResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, GetTranscriptQueryResponse{
			Role:    t.Role.String(),
			Content: t.Content,
			At:      t.At,
		})
	}
	return out, nil
}
