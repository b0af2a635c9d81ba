package queries

import (
	"context"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/domain/services"
	"drivethrough/internal/core/ports"
)

type GetOrderSummaryQueryHandler struct {
	sessions ports.SessionRepository
}

func NewGetOrderSummaryQueryHandler(sessions ports.SessionRepository) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{sessions: sessions}
}

// Handle summarizes the current order of the session.
// Returns errs.ObjectNotFoundError for unknown sessions.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	resp := GetOrderSummaryQueryResponse{SessionID: query.SessionID()}
	err := h.sessions.View(ctx, query.SessionID(), func(s *session.Session) error {
		summary, err := services.Summarize(s.Order())
		if err != nil {
			return err
		}
		resp.Summary = summary
		if latest, ok := s.History().Latest(); ok {
			resp.Sequence = latest.Sequence()
		}
		return nil
	})
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	return resp, nil
}
