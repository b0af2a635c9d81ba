package intent

import (
	"fmt"
	"strings"

	"drivethrough/internal/pkg/errs"
)

// Kind tags the variant of an Intent.
type Kind int

const (
	// Unknown is the zero value and never valid.
	Unknown Kind = iota
	// Add increments a line, creating it when absent.
	Add
	// Remove decrements a line; the item must be present in sufficient quantity.
	Remove
	// SetQuantity sets a line to an exact quantity; 0 deletes it.
	SetQuantity
	// Substitute moves quantity units from one item to another.
	Substitute
	// Clear empties the order.
	Clear
)

func kindCodes() map[Kind]string {
	return map[Kind]string{
		Add:         "add",
		Remove:      "remove",
		SetQuantity: "set_quantity",
		Substitute:  "substitute",
		Clear:       "clear",
	}
}

// ParseKind maps a wire code such as "set_quantity" (also "Set-Quantity" or
// "set quantity") to its Kind.
func ParseKind(code string) (Kind, error) {
	normalized := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(code)))
	for kind, c := range kindCodes() {
		if c == normalized {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"intent kind",
		fmt.Errorf("%q is not a known intent kind", code),
	)
}

// Validate rejects Unknown and out-of-range values.
func (k Kind) Validate() error {
	if _, ok := kindCodes()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("intent kind", fmt.Errorf("%d is not a valid intent kind", k))
	}
	return nil
}

// String returns the wire code of the kind, or "unknown".
func (k Kind) String() string {
	if code, ok := kindCodes()[k]; ok {
		return code
	}
	return "unknown"
}

// minQuantity is the smallest quantity the kind accepts.
func (k Kind) minQuantity() int {
	if k == SetQuantity {
		return 0
	}
	return 1
}
