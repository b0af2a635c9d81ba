package commands

import (
	"context"
	"log/slog"
	"time"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/domain/services"
	"drivethrough/internal/core/ports"
)

// TurnResult is what a customer turn did to the session.
type TurnResult struct {
	// Accepted is false when the batch or the utterance was rejected.
	Accepted bool
	// Intents is the batch that was applied or rejected.
	Intents intent.Batch
	// Order is the current order after the turn.
	Order   *order.Order
	Summary services.OrderSummary
	Report  services.Report
	// Sequence is the history entry recorded for an accepted turn.
	Sequence uint64
	Reply    string
}

// OrderEngine applies batches to sessions and publishes the resulting order events.
// It is shared by the handlers that change an order.
type OrderEngine struct {
	machine   services.OrderStateMachine
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewOrderEngine wires the state machine with an optional publisher (nil disables
// events).
func NewOrderEngine(
	machine services.OrderStateMachine,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) OrderEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return OrderEngine{
		machine:   machine,
		publisher: publisher,
		logger:    logger.With("component", "order_engine"),
	}
}

// Machine returns the state machine.
func (e OrderEngine) Machine() services.OrderStateMachine {
	return e.machine
}

// apply runs batch against the session order and commits the result.
func (e OrderEngine) apply(s *session.Session, batch intent.Batch) (TurnResult, error) {
	next, report, err := e.machine.Apply(s.Order(), batch)
	if err != nil {
		return TurnResult{}, err
	}

	summary, err := services.Summarize(next)
	if err != nil {
		return TurnResult{}, err
	}

	entry, err := s.Commit(batch, next)
	if err != nil {
		return TurnResult{}, err
	}

	return TurnResult{
		Accepted: true,
		Intents:  batch.Clone(),
		Order:    next,
		Summary:  summary,
		Report:   report,
		Sequence: entry.Sequence(),
		Reply:    Confirmation(report),
	}, nil
}

// rejected describes a rejected turn against the unchanged session order.
func (e OrderEngine) rejected(s *session.Session, batch intent.Batch, cause error) (TurnResult, error) {
	summary, err := services.Summarize(s.Order())
	if err != nil {
		return TurnResult{}, err
	}
	return TurnResult{
		Intents: batch.Clone(),
		Order:   s.Order(),
		Summary: summary,
		Reply:   CorrectiveReply(cause, e.machine.Catalog()),
	}, nil
}

// unchanged describes a turn that left the order as it was.
func (e OrderEngine) unchanged(s *session.Session) (TurnResult, error) {
	summary, err := services.Summarize(s.Order())
	if err != nil {
		return TurnResult{}, err
	}
	return TurnResult{Accepted: true, Order: s.Order(), Summary: summary, Reply: replyUnchanged}, nil
}

// publish sends event and logs a failure; the order change itself already happened.
func (e OrderEngine) publish(ctx context.Context, event ports.OrderEvent) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.WarnContext(ctx, "Order event was not published",
			"type", event.Type, "session_id", event.SessionID, "error", err)
	}
}

// publishTurn publishes an order.updated event for an accepted turn.
func (e OrderEngine) publishTurn(ctx context.Context, id kernel.UUID, r TurnResult, at time.Time) {
	if !r.Accepted {
		return
	}
	event := newOrderEvent(ports.OrderUpdated, id, r.Summary, at)
	event.Sequence = r.Sequence
	if len(r.Intents) > 0 {
		event.Intents = r.Intents.String()
	}
	e.publish(ctx, event)
}

func newOrderEvent(eventType string, id kernel.UUID, summary services.OrderSummary, at time.Time) ports.OrderEvent {
	lines := make([]ports.OrderEventLine, 0, len(summary.Lines))
	for _, l := range summary.Lines {
		lines = append(lines, ports.OrderEventLine{
			ItemName:  l.Name,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal.String(),
		})
	}
	return ports.OrderEvent{
		Type:       eventType,
		SessionID:  id.String(),
		Lines:      lines,
		Total:      summary.Total.String(),
		OccurredAt: at.UTC(),
	}
}

func recordEvent(eventType string, rec session.Record) ports.OrderEvent {
	lines := make([]ports.OrderEventLine, 0, len(rec.Lines))
	for _, l := range rec.Lines {
		lines = append(lines, ports.OrderEventLine{
			ItemName:  l.ItemName,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal.String(),
		})
	}
	return ports.OrderEvent{
		Type:       eventType,
		SessionID:  rec.SessionID.String(),
		Lines:      lines,
		Total:      rec.Total.String(),
		OccurredAt: rec.EndedAt,
	}
}

// archive stores rec through a fresh unit of work. A nil factory skips archiving.
func archive(ctx context.Context, factory ArchiveUoWFactory, rec session.Record) error {
	if factory == nil {
		return nil
	}

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderArchive().Archive(ctx, rec); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
