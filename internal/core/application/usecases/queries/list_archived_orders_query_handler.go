package queries

import (
	"context"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListArchivedOrdersQueryHandler reads the archive tables directly with SQL.
// A nil database yields an empty list.
type ListArchivedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListArchivedOrdersQueryHandler(db *gorm.DB) ListArchivedOrdersQueryHandler {
	return ListArchivedOrdersQueryHandler{db: db}
}

// Handle returns at most query.Limit() orders ordered by end time, newest first.
func (h ListArchivedOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListArchivedOrdersQuery,
) ([]ListArchivedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListArchivedOrdersQueryResponse, 0)
	if h.db == nil {
		return orders, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.session_id,
			o.outcome,
			COALESCE(SUM(l.quantity), 0) AS items,
			o.total,
			o.turns,
			o.started_at,
			o.ended_at
		FROM archived_orders o
		LEFT JOIN archived_order_lines l ON l.session_id = o.session_id
		WHERE @outcome = '' OR o.outcome = @outcome
		GROUP BY o.session_id
		ORDER BY o.ended_at DESC, o.session_id
		LIMIT @limit
	`, map[string]any{
		"outcome": string(query.Outcome()),
		"limit":   query.Limit(),
	}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListArchivedOrdersQueryResponse
		var id uuid.UUID
		var outcome string
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&outcome,
			&item.Items,
			&total,
			&item.Turns,
			&item.StartedAt,
			&item.EndedAt,
		)
		if err != nil {
			return nil, err
		}

		sessionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.SessionID = sessionID

		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}
		item.Total = money
		item.Outcome = session.Outcome(outcome)
		item.StartedAt = item.StartedAt.UTC()
		item.EndedAt = item.EndedAt.UTC()

		orders = append(orders, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
