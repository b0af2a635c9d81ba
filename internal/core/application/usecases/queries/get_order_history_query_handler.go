package queries

import (
	"context"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
)

type GetOrderHistoryQueryHandler struct {
	sessions ports.SessionRepository
}

func NewGetOrderHistoryQueryHandler(sessions ports.SessionRepository) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{sessions: sessions}
}

// Handle returns the history entries in sequence order.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)
	err := h.sessions.View(ctx, query.SessionID(), func(s *session.Session) error {
		for e := range s.History().Entries() {
			entries = append(entries, GetOrderHistoryQueryResponse{
				Sequence:   e.Sequence(),
				Intents:    e.Intents().String(),
				Items:      e.Snapshot().Units(),
				Total:      e.Snapshot().Total(),
				RecordedAt: e.RecordedAt(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
