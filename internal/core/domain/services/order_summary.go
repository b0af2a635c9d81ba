package services

import (
	"errors"
	"fmt"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/pkg/errs"
)

// ErrSummaryMismatch means an order's total disagrees with the sum of its lines.
// It can only happen to an order that was not produced by a Draft.
var ErrSummaryMismatch = errors.New("order total does not match its lines")

// SummaryLine is one display row.
type SummaryLine struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
	LineTotal kernel.Money
}

// OrderSummary is the display projection of an order.
type OrderSummary struct {
	Lines    []SummaryLine
	Subtotal kernel.Money
	Total    kernel.Money
}

// IsEmpty reports whether the summary has no lines.
func (s OrderSummary) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Summarize derives the display rows of o in insertion order together with the
// subtotal and total. The subtotal is recomputed here and compared with o.Total().
func Summarize(o *order.Order) (OrderSummary, error) {
	if err := o.Validate(); err != nil {
		return OrderSummary{}, errs.NewValueIsInvalidErrorWithCause("order", err)
	}

	lines := o.Lines()
	summary := OrderSummary{
		Lines:    make([]SummaryLine, 0, len(lines)),
		Subtotal: kernel.Zero(),
	}
	for _, l := range lines {
		row := SummaryLine{
			Name:      l.ItemName(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice(),
			LineTotal: l.Total(),
		}
		summary.Lines = append(summary.Lines, row)
		summary.Subtotal = summary.Subtotal.Add(row.LineTotal)
	}

	if !summary.Subtotal.Equal(o.Total()) {
		return OrderSummary{}, fmt.Errorf("%w: lines sum to %s, total is %s", ErrSummaryMismatch, summary.Subtotal, o.Total())
	}
	summary.Total = summary.Subtotal
	return summary, nil
}
