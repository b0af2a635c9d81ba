package order

import (
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"
)

// Line is one entry of an order. Its quantity is always at least 1.
type Line struct {
	item     menu.Item
	quantity int
}

// Item returns the menu item the line refers to.
func (l Line) Item() menu.Item {
	return l.item
}

// ItemName returns the canonical menu name.
func (l Line) ItemName() string {
	return l.item.Name()
}

// Quantity returns the number of units.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the menu price of one unit.
func (l Line) UnitPrice() kernel.Money {
	return l.item.Price()
}

// Total returns unit price × quantity.
func (l Line) Total() kernel.Money {
	return l.item.Price().Times(l.quantity)
}

// LineChange records how one line moved during a change. Before or After is 0
// when the line did not exist before or was deleted.
type LineChange struct {
	ItemName string
	Before   int
	After    int
}

// Delta returns After - Before.
func (c LineChange) Delta() int {
	return c.After - c.Before
}
