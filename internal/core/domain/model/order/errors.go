package order

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotInOrder is the sentinel behind every ItemNotInOrderError.
	ErrItemNotInOrder = errors.New("item is not in the order")
	// ErrInsufficientQuantity is the sentinel behind every InsufficientQuantityError.
	ErrInsufficientQuantity = errors.New("insufficient quantity in the order")
)

// ItemNotInOrderError reports a Remove or Substitute targeting an item with no line.
type ItemNotInOrderError struct {
	ItemName string
}

func NewItemNotInOrderError(itemName string) *ItemNotInOrderError {
	return &ItemNotInOrderError{ItemName: itemName}
}

func (e *ItemNotInOrderError) Error() string {
	return fmt.Sprintf("%s: %q", ErrItemNotInOrder, e.ItemName)
}

func (e *ItemNotInOrderError) Unwrap() error {
	return ErrItemNotInOrder
}

// InsufficientQuantityError reports a request to remove more units than the line holds.
type InsufficientQuantityError struct {
	ItemName  string
	Requested int
	Available int
}

func NewInsufficientQuantityError(itemName string, requested, available int) *InsufficientQuantityError {
	return &InsufficientQuantityError{ItemName: itemName, Requested: requested, Available: available}
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("%s: requested %d of %q, only %d present",
		ErrInsufficientQuantity, e.Requested, e.ItemName, e.Available)
}

func (e *InsufficientQuantityError) Unwrap() error {
	return ErrInsufficientQuantity
}
