package order

import (
	"errors"
	"strconv"
	"strings"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not produced by Empty or
	// Draft.Commit, so its total cannot be trusted.
	ErrOrderIsNotConstructed = errors.New("order must be created via Empty or Draft.Commit")
)

// Order is an immutable snapshot of the cart. Every accepted change yields a new
// Order, which is what lets history keep one snapshot per batch without copying.
//
// Order follows these invariants:
//   - Every line has quantity >= 1 and refers to a menu item
//   - No two lines refer to the same item (compared case-insensitively)
//   - Lines are kept in insertion order
//   - total equals the sum of line totals
type Order struct {
	lines []Line
	total kernel.Money
	guard guard.ConstructorGuard
}

// Empty returns an order with no lines and a zero total.
func Empty() *Order {
	return &Order{
		total: kernel.Zero(),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the order was produced by Empty or Draft.Commit.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Lines returns a copy of the lines in insertion order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Line finds the line for name, compared case-insensitively.
func (o *Order) Line(name string) (Line, bool) {
	if i := indexOf(o.lines, menu.Key(name)); i >= 0 {
		return o.lines[i], true
	}
	return Line{}, false
}

// Quantity returns the quantity of name, or 0 when the order has no such line.
func (o *Order) Quantity(name string) int {
	line, _ := o.Line(name)
	return line.quantity
}

// Total returns the order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Len returns the number of lines.
func (o *Order) Len() int {
	return len(o.lines)
}

// Units returns the sum of all line quantities.
func (o *Order) Units() int {
	units := 0
	for _, l := range o.lines {
		units += l.quantity
	}
	return units
}

// Equal reports whether both orders hold the same lines, in the same order, with the
// same quantities, unit prices and total.
func (o *Order) Equal(other *Order) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.lines) != len(other.lines) || !o.total.Equal(other.total) {
		return false
	}
	for i, l := range o.lines {
		r := other.lines[i]
		if l.item.Key() != r.item.Key() || l.quantity != r.quantity || !l.UnitPrice().Equal(r.UnitPrice()) {
			return false
		}
	}
	return true
}

// Edit opens a Draft holding a private copy of the lines. The order itself is never
// modified.
func (o *Order) Edit() *Draft {
	return &Draft{lines: o.Lines()}
}

// String renders the order as "{Big Mac×2, Coke×1} 12.00".
func (o *Order) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, l := range o.lines {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(l.ItemName())
		b.WriteString("×")
		b.WriteString(strconv.Itoa(l.quantity))
	}
	b.WriteString("} ")
	b.WriteString(o.total.String())
	return b.String()
}

func indexOf(lines []Line, key string) int {
	for i, l := range lines {
		if l.item.Key() == key {
			return i
		}
	}
	return -1
}
