package menu

import (
	"errors"
	"fmt"

	"drivethrough/internal/pkg/errs"
	"drivethrough/internal/pkg/guard"
)

var (
	// ErrCatalogIsNotConstructed is returned by Validate for a zero-value Catalog.
	ErrCatalogIsNotConstructed = errors.New("Catalog must be created via NewCatalog constructor")
	// ErrCatalogIsEmpty is returned when a catalog is built without items.
	ErrCatalogIsEmpty = errs.NewValueIsRequiredError("menu items")
)

// Catalog is the immutable menu. Items keep the order in which they were loaded,
// which is also the display order.
//
// Example:
//
//	catalog, err := menu.NewCatalog(bigMac, largeFry, coke)
//	if err != nil {
//	    return err
//	}
//	item, err := catalog.Lookup("big mac") // case-insensitive
type Catalog struct {
	items []Item
	byKey map[string]int

	guard guard.ConstructorGuard
}

// NewCatalog builds a catalog from the given items.
//
// Returns an error when the list is empty, when an item was not built by NewItem
// or when two items share a name ignoring case.
func NewCatalog(items ...Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrCatalogIsEmpty
	}

	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byKey: make(map[string]int, len(items)),
		guard: guard.NewConstructorGuard(),
	}

	var problems []error
	for _, item := range items {
		if err := item.Validate(); err != nil {
			problems = append(problems, err)
			continue
		}
		if _, exists := c.byKey[item.Key()]; exists {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"menu item",
				fmt.Errorf("%q is listed more than once", item.Name()),
			))
			continue
		}
		c.byKey[item.Key()] = len(c.items)
		c.items = append(c.items, item)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the catalog was built by NewCatalog.
func (c *Catalog) Validate() error {
	if c == nil {
		return ErrCatalogIsNotConstructed
	}
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

// Lookup finds an item by exact name, ignoring case and surrounding whitespace.
// It returns *UnknownItemError when the name is not on the menu.
func (c *Catalog) Lookup(name string) (Item, error) {
	idx, ok := c.byKey[Key(name)]
	if !ok {
		return Item{}, NewUnknownItemError(name)
	}
	return c.items[idx], nil
}

// Contains reports whether Lookup would succeed for name.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byKey[Key(name)]
	return ok
}

// AllItems returns the items in display order. The slice is a copy.
func (c *Catalog) AllItems() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Names returns the canonical item names in display order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.items))
	for i, item := range c.items {
		names[i] = item.Name()
	}
	return names
}

// Len returns the number of items on the menu.
func (c *Catalog) Len() int {
	return len(c.items)
}
