package queries

import (
	"context"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"
	"drivethrough/internal/pkg/errs"
)

// GetArchivedOrderQueryHandler reads through the OrderArchive port. Without an
// archive every lookup reports not found.
type GetArchivedOrderQueryHandler struct {
	archive ports.OrderArchive
}

func NewGetArchivedOrderQueryHandler(archive ports.OrderArchive) GetArchivedOrderQueryHandler {
	return GetArchivedOrderQueryHandler{archive: archive}
}

func (h GetArchivedOrderQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedOrderQuery,
) (session.Record, error) {
	if err := query.Validate(); err != nil {
		return session.Record{}, err
	}
	if h.archive == nil {
		return session.Record{}, errs.NewObjectNotFoundError("archived order", query.SessionID().String())
	}

	return h.archive.Get(ctx, query.SessionID())
}
