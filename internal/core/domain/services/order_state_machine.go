package services

import (
	"errors"
	"fmt"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/pkg/errs"
)

var (
	// ErrBatchRejected is the sentinel behind every BatchError.
	ErrBatchRejected = errors.New("intent batch rejected")
	// ErrCatalogIsRequired is returned by NewOrderStateMachine without a catalog.
	ErrCatalogIsRequired = errs.NewValueIsRequiredError("catalog")
)

// BatchError reports the first intent of a batch that could not be applied. Err is
// one of *menu.UnknownItemError, *order.ItemNotInOrderError,
// *order.InsufficientQuantityError, *intent.InvalidQuantityError or an errs type, and
// is reachable with errors.As.
type BatchError struct {
	Index  int
	Intent intent.Intent
	Err    error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: intent %d %s: %v", ErrBatchRejected, e.Index, e.Intent, e.Err)
}

func (e *BatchError) Unwrap() []error {
	return []error{ErrBatchRejected, e.Err}
}

// Outcome is what one intent did to the order.
type Outcome struct {
	Intent  intent.Intent
	Changes []order.LineChange
}

// Report lists one Outcome per intent of an applied batch, in submitted order.
type Report struct {
	Outcomes []Outcome
}

// Changes flattens every line change of the report, skipping the ones that moved
// nothing.
func (r Report) Changes() []order.LineChange {
	var out []order.LineChange
	for _, o := range r.Outcomes {
		for _, c := range o.Changes {
			if c.Delta() != 0 {
				out = append(out, c)
			}
		}
	}
	return out
}

// OrderStateMachine applies intent batches to orders against one menu catalog.
//
// Business rules:
//   - A batch is applied to a working copy in submitted order
//   - The first failing intent rejects the whole batch and the input order is returned
//   - The total of the produced order is recomputed from its lines
//   - Intents are validated before use, because they come from an untrusted producer
//
// Example usage:
//
//	machine, _ := NewOrderStateMachine(catalog)
//	next, report, err := machine.Apply(order.Empty(), intent.NewBatch(
//	    intent.NewAdd("Big Mac", 1),
//	    intent.NewAdd("Large Fry", 2),
//	))
//	var unknown *menu.UnknownItemError
//	if errors.As(err, &unknown) {
//	    // Tell the customer what is on the menu
//	}
type OrderStateMachine struct {
	catalog *menu.Catalog
}

// NewOrderStateMachine binds a state machine to catalog.
func NewOrderStateMachine(catalog *menu.Catalog) (OrderStateMachine, error) {
	if catalog == nil {
		return OrderStateMachine{}, ErrCatalogIsRequired
	}
	if err := catalog.Validate(); err != nil {
		return OrderStateMachine{}, err
	}
	return OrderStateMachine{catalog: catalog}, nil
}

// Catalog returns the catalog the machine validates against.
func (m OrderStateMachine) Catalog() *menu.Catalog {
	return m.catalog
}

// Apply runs batch against current.
//
// Parameters:
//   - current: the order before the batch (must be constructed)
//   - batch: at least one intent
//
// Returns:
//   - *order.Order: the new order, or current itself when the batch is rejected
//   - Report: per-intent line changes (zero value on failure)
//   - error: *BatchError naming the failing intent, or a validation error for the inputs
func (m OrderStateMachine) Apply(current *order.Order, batch intent.Batch) (*order.Order, Report, error) {
	if err := current.Validate(); err != nil {
		return current, Report{}, errs.NewValueIsInvalidErrorWithCause("order", err)
	}
	if len(batch) == 0 {
		return current, Report{}, errs.NewValueIsRequiredError("intents")
	}

	draft := current.Edit()
	report := Report{Outcomes: make([]Outcome, 0, len(batch))}
	for i, in := range batch {
		changes, err := m.applyOne(draft, in)
		if err != nil {
			return current, Report{}, &BatchError{Index: i, Intent: in, Err: err}
		}
		report.Outcomes = append(report.Outcomes, Outcome{Intent: in, Changes: changes})
	}

	return draft.Commit(), report, nil
}

func (m OrderStateMachine) applyOne(draft *order.Draft, in intent.Intent) ([]order.LineChange, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	switch in.Kind() {
	case intent.Clear:
		return draft.Clear(), nil

	case intent.Substitute:
		from, fromErr := m.catalog.Lookup(in.ItemName())
		to, toErr := m.catalog.Lookup(in.ToItemName())
		if err := errors.Join(fromErr, toErr); err != nil {
			return nil, err
		}
		removed, err := draft.Remove(from, in.Quantity())
		if err != nil {
			return nil, err
		}
		if err = checkLineLimit(draft, to, in.Quantity()); err != nil {
			return nil, err
		}
		added, err := draft.Add(to, in.Quantity())
		if err != nil {
			return nil, err
		}
		return []order.LineChange{removed, added}, nil

	case intent.Add, intent.Remove, intent.SetQuantity:
		item, err := m.catalog.Lookup(in.ItemName())
		if err != nil {
			return nil, err
		}
		var change order.LineChange
		switch in.Kind() {
		case intent.Add:
			if err = checkLineLimit(draft, item, in.Quantity()); err != nil {
				return nil, err
			}
			change, err = draft.Add(item, in.Quantity())
		case intent.Remove:
			change, err = draft.Remove(item, in.Quantity())
		default:
			change, err = draft.Set(item, in.Quantity())
		}
		if err != nil {
			return nil, err
		}
		return []order.LineChange{change}, nil

	default:
		return nil, in.Kind().Validate()
	}
}

// checkLineLimit rejects adding quantity units of item when the line would exceed
// intent.MaxQuantity. quantity is already bounded by Validate, so the sum cannot overflow.
func checkLineLimit(draft *order.Draft, item menu.Item, quantity int) error {
	if after := draft.Quantity(item) + quantity; after > intent.MaxQuantity {
		return intent.NewInvalidQuantityError(item.Name(), after, 1, intent.MaxQuantity)
	}
	return nil
}
