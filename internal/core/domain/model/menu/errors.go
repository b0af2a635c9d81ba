package menu

import (
	"errors"
	"fmt"
)

// ErrUnknownItem is the sentinel behind every UnknownItemError.
var ErrUnknownItem = errors.New("unknown menu item")

// UnknownItemError reports an item name that is not on the menu.
type UnknownItemError struct {
	ItemName string
}

func NewUnknownItemError(itemName string) *UnknownItemError {
	return &UnknownItemError{ItemName: itemName}
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownItem, e.ItemName)
}

func (e *UnknownItemError) Unwrap() error {
	return ErrUnknownItem
}
