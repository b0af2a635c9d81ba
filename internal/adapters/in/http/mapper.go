package http

import (
	"errors"
	"fmt"

	"drivethrough/internal/core/application/usecases/commands"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/domain/services"
	"drivethrough/internal/generated/servers"
	"drivethrough/internal/pkg/errs"
)

func toSessionID(id servers.SessionId) (kernel.UUID, error) {
	sessionID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("sessionId", err)
	}
	return sessionID, nil
}

// toBatch converts wire intents. A missing quantity means one unit, except for
// set_quantity where it is required. Quantity rules are left to the state machine.
func toBatch(in []servers.Intent) (intent.Batch, error) {
	batch := make(intent.Batch, 0, len(in))
	var problems []error

	for i, wire := range in {
		quantity := 1
		switch {
		case wire.Quantity != nil:
			quantity = *wire.Quantity
		case wire.Op == servers.SetQuantity:
			problems = append(problems, fmt.Errorf("intent %d: %w", i, errs.NewValueIsRequiredError("quantity")))
			continue
		}

		parsed, err := intent.Parse(string(wire.Op), deref(wire.Item), deref(wire.To), quantity)
		if err != nil {
			problems = append(problems, fmt.Errorf("intent %d: %w", i, err))
			continue
		}
		batch = append(batch, parsed)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return batch, nil
}

func toIntents(batch intent.Batch) []servers.Intent {
	out := make([]servers.Intent, 0, len(batch))
	for _, in := range batch {
		wire := servers.Intent{Op: servers.IntentOp(in.Kind().String())}
		if in.Kind() != intent.Clear {
			item := in.ItemName()
			quantity := in.Quantity()
			wire.Item = &item
			wire.Quantity = &quantity
		}
		if in.Kind() == intent.Substitute {
			to := in.ToItemName()
			wire.To = &to
		}
		out = append(out, wire)
	}
	return out
}

func toOrderSummary(summary services.OrderSummary, sequence uint64) servers.OrderSummary {
	lines := make([]servers.OrderLine, len(summary.Lines))
	for i, l := range summary.Lines {
		lines[i] = servers.OrderLine{
			Item:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			LineTotal: l.LineTotal.String(),
		}
	}

	out := servers.OrderSummary{
		Lines:    lines,
		Subtotal: summary.Subtotal.String(),
		Total:    summary.Total.String(),
	}
	if sequence > 0 {
		seq := int64(sequence) //nolint:gosec // sequences start at 1 and grow by one per turn
		out.Sequence = &seq
	}
	return out
}

func toTurnResult(r commands.TurnResult) servers.TurnResult {
	changes := r.Report.Changes()
	out := servers.TurnResult{
		Accepted: r.Accepted,
		Changes:  make([]servers.LineChange, len(changes)),
		Intents:  toIntents(r.Intents),
		Order:    toOrderSummary(r.Summary, r.Sequence),
		Reply:    r.Reply,
	}
	for i, c := range changes {
		out.Changes[i] = servers.LineChange{Item: c.ItemName, Before: c.Before, After: c.After}
	}
	if r.Sequence > 0 {
		seq := int64(r.Sequence) //nolint:gosec // sequences start at 1 and grow by one per turn
		out.Sequence = &seq
	}
	return out
}

func toArchivedOrder(rec session.Record) servers.ArchivedOrder {
	out := servers.ArchivedOrder{
		SessionId: rec.SessionID.Bytes(),
		Outcome:   servers.ArchivedOrderOutcome(rec.Outcome),
		Lines:     make([]servers.OrderLine, len(rec.Lines)),
		Entries:   make([]servers.ArchivedEntry, len(rec.Entries)),
		Total:     rec.Total.String(),
		Turns:     rec.Turns,
		StartedAt: rec.StartedAt,
		EndedAt:   rec.EndedAt,
	}
	for i, l := range rec.Lines {
		out.Lines[i] = servers.OrderLine{
			Item:      l.ItemName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			LineTotal: l.LineTotal.String(),
		}
	}
	for i, e := range rec.Entries {
		out.Entries[i] = servers.ArchivedEntry{
			Sequence:   int64(e.Sequence), //nolint:gosec // sequences start at 1 and grow by one per turn
			Intents:    e.Intents,
			Total:      e.Total.String(),
			RecordedAt: e.RecordedAt,
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
