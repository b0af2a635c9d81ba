package session

import (
	"fmt"
	"strings"

	"drivethrough/internal/pkg/errs"
)

// Role tells who spoke a transcript turn.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	// Customer is the person at the window.
	Customer
	// Assistant is the order taker's reply.
	Assistant
)

func roleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer:  "customer",
		Assistant: "assistant",
	}
}

// ParseRole converts "customer" or "assistant" (any case) into a Role.
func ParseRole(s string) (Role, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for r, code := range roleStrings() {
		if code == want {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects UnknownRole and out of range values.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Outcome is how a session ended.
type Outcome string

const (
	// CheckedOut means the customer confirmed the order.
	CheckedOut Outcome = "checked_out"
	// Abandoned means the session expired while idle with items still in the cart.
	Abandoned Outcome = "abandoned"
)

// Validate accepts CheckedOut and Abandoned only.
func (o Outcome) Validate() error {
	switch o {
	case CheckedOut, Abandoned:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%q is not a valid outcome", string(o)))
	}
}
