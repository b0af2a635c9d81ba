package intent

import (
	"errors"
	"fmt"
	"strings"

	"drivethrough/internal/pkg/errs"
	"drivethrough/internal/pkg/guard"
)

// MaxQuantity is the largest quantity one intent may carry and one order line may hold.
const MaxQuantity = 99

var (
	// ErrIntentIsNotConstructed is returned by Validate for a zero-value Intent.
	ErrIntentIsNotConstructed = errors.New("Intent must be created via one of the intent constructors")
)

// Intent is one requested change to an order. It is a tagged variant: Kind selects
// which of the fields are meaningful.
//
//	Add(item, quantity)          1 <= quantity <= MaxQuantity
//	Remove(item, quantity)       1 <= quantity <= MaxQuantity
//	SetQuantity(item, quantity)  0 <= quantity <= MaxQuantity, 0 deletes the line
//	Substitute(from, to, qty)    1 <= qty <= MaxQuantity
//	Clear()
//
// Intent values are immutable and comparable.
type Intent struct {
	kind     Kind
	item     string
	toItem   string
	quantity int

	guard guard.ConstructorGuard
}

// NewAdd requests quantity more units of item.
func NewAdd(item string, quantity int) Intent {
	return newIntent(Add, item, "", quantity)
}

// NewRemove requests removing up to quantity units of item.
func NewRemove(item string, quantity int) Intent {
	return newIntent(Remove, item, "", quantity)
}

// NewSetQuantity requests exactly quantity units of item.
func NewSetQuantity(item string, quantity int) Intent {
	return newIntent(SetQuantity, item, "", quantity)
}

// NewSubstitute requests swapping quantity units of from for the same number of to.
func NewSubstitute(from, to string, quantity int) Intent {
	return newIntent(Substitute, from, to, quantity)
}

// NewClear requests an empty order.
func NewClear() Intent {
	return newIntent(Clear, "", "", 0)
}

// Parse builds an intent from its wire representation. Only the kind is checked
// here; everything else is left to Validate.
//
// Example:
//
//	in, err := intent.Parse("substitute", "Large Fry", "Coke", 1)
func Parse(code, item, toItem string, quantity int) (Intent, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return Intent{}, err
	}

	switch kind {
	case Add:
		return NewAdd(item, quantity), nil
	case Remove:
		return NewRemove(item, quantity), nil
	case SetQuantity:
		return NewSetQuantity(item, quantity), nil
	case Substitute:
		return NewSubstitute(item, toItem, quantity), nil
	case Clear:
		return NewClear(), nil
	default:
		return Intent{}, kind.Validate()
	}
}

func newIntent(kind Kind, item, toItem string, quantity int) Intent {
	return Intent{
		kind:     kind,
		item:     strings.TrimSpace(item),
		toItem:   strings.TrimSpace(toItem),
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate checks the intent against the rules of its kind.
//
// Returns:
//   - ErrIntentIsNotConstructed for zero values
//   - errs.ValueIsRequiredError for missing item names
//   - *InvalidQuantityError for quantities below the kind's minimum or above MaxQuantity
//
// Several problems are joined into one error.
func (i Intent) Validate() error {
	if err := i.guard.Validate(ErrIntentIsNotConstructed); err != nil {
		return err
	}
	if err := i.kind.Validate(); err != nil {
		return err
	}
	if i.kind == Clear {
		return nil
	}

	var problems []error
	if i.item == "" {
		problems = append(problems, errs.NewValueIsRequiredError("item name"))
	}
	if i.kind == Substitute && i.toItem == "" {
		problems = append(problems, errs.NewValueIsRequiredError("substitute item name"))
	}
	if i.quantity < i.kind.minQuantity() || i.quantity > MaxQuantity {
		problems = append(problems, NewInvalidQuantityError(i.item, i.quantity, i.kind.minQuantity(), MaxQuantity))
	}

	return errors.Join(problems...)
}

// Kind returns the variant tag.
func (i Intent) Kind() Kind {
	return i.kind
}

// ItemName returns the target item, or the item being replaced for Substitute.
// It is empty for Clear.
func (i Intent) ItemName() string {
	return i.item
}

// ToItemName returns the replacement item of a Substitute, empty otherwise.
func (i Intent) ToItemName() string {
	return i.toItem
}

// Quantity returns the requested quantity; it is 0 for Clear.
func (i Intent) Quantity() int {
	return i.quantity
}

// String renders the intent for logs and history, e.g. "substitute(Large Fry -> Coke, 1)".
func (i Intent) String() string {
	switch i.kind {
	case Clear:
		return "clear()"
	case Substitute:
		return fmt.Sprintf("substitute(%s -> %s, %d)", i.item, i.toItem, i.quantity)
	default:
		return fmt.Sprintf("%s(%s, %d)", i.kind, i.item, i.quantity)
	}
}
