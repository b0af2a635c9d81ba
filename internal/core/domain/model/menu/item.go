package menu

import (
	"errors"
	"strings"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/errs"
	"drivethrough/internal/pkg/guard"

	"golang.org/x/text/cases"
)

var (
	// ErrItemIsNotConstructed is returned by Validate for a zero-value Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrItemNameIsRequired is returned for blank item names.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Item is one entry of the menu. Items are immutable; every order line refers to
// the catalog's Item rather than copying name and price around.
type Item struct {
	name     string
	key      string
	price    kernel.Money
	category string

	guard guard.ConstructorGuard
}

// NewItem creates a menu item. The name is trimmed and must not be blank.
//
// Example:
//
//	bigMac, err := menu.NewItem("Big Mac", kernel.MustMoney("5.00"), "burger")
func NewItem(name string, price kernel.Money, category string) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrItemNameIsRequired
	}

	return Item{
		name:     name,
		key:      Key(name),
		price:    price,
		category: strings.TrimSpace(category),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Key normalizes an item name for case-insensitive comparison.
// Names that differ only in case or surrounding whitespace share a key.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Validate ensures the item was built by NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the canonical spelling of the item.
func (i Item) Name() string {
	return i.name
}

// Key returns the normalized lookup key of the item.
func (i Item) Key() string {
	return i.key
}

// Price returns the unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

// Category returns the informational category tag, e.g. "burger".
func (i Item) Category() string {
	return i.category
}

// IsEqual reports whether both items denote the same menu entry.
func (i Item) IsEqual(other Item) bool {
	return i.key == other.key
}
