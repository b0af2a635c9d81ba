package order

import (
	"slices"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/pkg/errs"
)

const maxLineQuantity = intent.MaxQuantity

// Draft is a mutable working copy of an Order. Changes made to a draft are invisible
// to the order it was opened from until Commit produces a new Order. A draft that is
// dropped without Commit leaves no trace, which is how a failed batch is rolled back.
type Draft struct {
	lines []Line
}

// Add increases the quantity of item by quantity, creating the line at the end when
// it does not exist yet. The line never grows past maxLineQuantity.
func (d *Draft) Add(item menu.Item, quantity int) (LineChange, error) {
	if err := item.Validate(); err != nil {
		return LineChange{}, err
	}

	i := indexOf(d.lines, item.Key())
	before := 0
	if i >= 0 {
		before = d.lines[i].quantity
	}
	if quantity < 1 || quantity > maxLineQuantity-before {
		return LineChange{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity-before)
	}

	if i >= 0 {
		d.lines[i].quantity += quantity
	} else {
		d.lines = append(d.lines, Line{item: item, quantity: quantity})
	}
	return LineChange{ItemName: item.Name(), Before: before, After: before + quantity}, nil
}

// Remove decreases the quantity of item by quantity. The line is deleted when it
// reaches 0.
//
// Returns:
//   - *ItemNotInOrderError when the draft has no line for item
//   - *InsufficientQuantityError when quantity exceeds the line quantity
func (d *Draft) Remove(item menu.Item, quantity int) (LineChange, error) {
	if err := item.Validate(); err != nil {
		return LineChange{}, err
	}
	if quantity < 1 {
		return LineChange{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	i := indexOf(d.lines, item.Key())
	if i < 0 {
		return LineChange{}, NewItemNotInOrderError(item.Name())
	}

	before := d.lines[i].quantity
	if quantity > before {
		return LineChange{}, NewInsufficientQuantityError(item.Name(), quantity, before)
	}

	d.setAt(i, before-quantity)
	return LineChange{ItemName: item.Name(), Before: before, After: before - quantity}, nil
}

// Set makes the quantity of item exactly quantity. A quantity of 0 deletes the line
// and is a no-op when there is none; an existing line keeps its position.
func (d *Draft) Set(item menu.Item, quantity int) (LineChange, error) {
	if err := item.Validate(); err != nil {
		return LineChange{}, err
	}
	if quantity < 0 || quantity > maxLineQuantity {
		return LineChange{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, maxLineQuantity)
	}

	i := indexOf(d.lines, item.Key())
	before := 0
	switch {
	case i >= 0:
		before = d.lines[i].quantity
		d.setAt(i, quantity)
	case quantity > 0:
		d.lines = append(d.lines, Line{item: item, quantity: quantity})
	}
	return LineChange{ItemName: item.Name(), Before: before, After: quantity}, nil
}

// Clear deletes every line and reports one change per deleted line.
func (d *Draft) Clear() []LineChange {
	changes := make([]LineChange, 0, len(d.lines))
	for _, l := range d.lines {
		changes = append(changes, LineChange{ItemName: l.ItemName(), Before: l.quantity})
	}
	d.lines = nil
	return changes
}

// Quantity returns the current draft quantity of item.
func (d *Draft) Quantity(item menu.Item) int {
	if i := indexOf(d.lines, item.Key()); i >= 0 {
		return d.lines[i].quantity
	}
	return 0
}

// Commit produces a new Order from the draft. The total is recomputed from all
// lines.
func (d *Draft) Commit() *Order {
	o := Empty()
	o.lines = slices.Clone(d.lines)

	total := kernel.Zero()
	for _, l := range o.lines {
		total = total.Add(l.Total())
	}
	o.total = total
	return o
}

func (d *Draft) setAt(i, quantity int) {
	if quantity == 0 {
		d.lines = slices.Delete(d.lines, i, i+1)
		return
	}
	d.lines[i].quantity = quantity
}
