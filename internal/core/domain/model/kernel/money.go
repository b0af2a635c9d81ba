package kernel

import (
	"fmt"

	"drivethrough/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fraction digits used when rendering amounts.
const moneyScale = 2

// Money is a non-negative fixed-point amount backed by shopspring/decimal.
// The zero value is a valid amount of zero.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("5.00")
//	total := price.Times(2).Add(kernel.Zero())
//	fmt.Println(total) // 10.00
type Money struct {
	amount decimal.Decimal
}

// Zero returns an amount of zero.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney wraps a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "5", "2.50" or "0.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid. It panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	if quantity <= 0 {
		return Zero()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Equal compares amounts numerically, so "5" equals "5.00".
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal exposes the amount for adapters that persist or serialize it.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two fraction digits, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
