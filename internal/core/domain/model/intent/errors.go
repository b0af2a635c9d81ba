package intent

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity is the sentinel behind every InvalidQuantityError.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrParseFailure is the sentinel behind every ParseFailure.
	ErrParseFailure = errors.New("could not understand the request")
)

// InvalidQuantityError reports a quantity outside [Min, Max] for an item. Quantity
// is the requested amount, or the resulting line quantity when an order line would
// grow past Max.
type InvalidQuantityError struct {
	ItemName string
	Quantity int
	Min      int
	Max      int
}

func NewInvalidQuantityError(itemName string, quantity, minQuantity, maxQuantity int) *InvalidQuantityError {
	return &InvalidQuantityError{ItemName: itemName, Quantity: quantity, Min: minQuantity, Max: maxQuantity}
}

// TooMany reports whether the quantity is above the maximum rather than below the minimum.
func (e *InvalidQuantityError) TooMany() bool {
	return e.Quantity > e.Max
}

func (e *InvalidQuantityError) Error() string {
	if e.TooMany() {
		return fmt.Sprintf("%s for %q: %d is more than %d", ErrInvalidQuantity, e.ItemName, e.Quantity, e.Max)
	}
	return fmt.Sprintf("%s for %q: %d is less than %d", ErrInvalidQuantity, e.ItemName, e.Quantity, e.Min)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// ParseFailure is returned by an intent producer that could not derive any intent
// from an utterance. The order is never touched when it occurs.
type ParseFailure struct {
	Utterance string
	Reason    string
	Cause     error
}

func NewParseFailure(utterance, reason string) *ParseFailure {
	return &ParseFailure{Utterance: utterance, Reason: reason}
}

func NewParseFailureWithCause(utterance, reason string, cause error) *ParseFailure {
	return &ParseFailure{Utterance: utterance, Reason: reason, Cause: cause}
}

func (e *ParseFailure) Error() string {
	msg := fmt.Sprintf("%s %q: %s", ErrParseFailure, e.Utterance, e.Reason)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ParseFailure) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrParseFailure}
	}
	return []error{ErrParseFailure, e.Cause}
}
