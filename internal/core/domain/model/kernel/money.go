package kernel

import (
	"fmt"

	"invoicing/internal/pkg/errs"
)

// Money represents a non-negative monetary amount in minor currency units
// (cents). Money is an immutable value object: arithmetic produces new
// instances and never mutates the receiver.
//
// Unlike most value objects in this package the zero value of Money is
// valid - it is simply zero cents, the identity element for Add.
//
// Example:
//
//	price, err := kernel.NewMoney(7500)
//	if err != nil {
//	    // handle validation error
//	}
//	total, _ := price.Multiply(3)
//	fmt.Println(total) // Output: 225.00
type Money struct {
	amountInCents int64
}

// NewMoney creates a Money value from an amount in cents.
// The amount must not be negative.
func NewMoney(amountInCents int64) (Money, error) {
	if amountInCents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", amountInCents))
	}
	return Money{amountInCents: amountInCents}, nil
}

// ZeroMoney returns the zero amount, the identity element for Add.
func ZeroMoney() Money {
	return Money{}
}

// AmountInCents returns the amount in minor currency units.
func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

// Add returns the sum of two amounts as a new Money value.
func (m Money) Add(other Money) Money {
	return Money{amountInCents: m.amountInCents + other.amountInCents}
}

// Multiply returns the amount multiplied by factor as a new Money value.
// A negative factor fails, as it would produce a negative amount.
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("multiplier",
			fmt.Errorf("%d is negative", factor))
	}
	return Money{amountInCents: m.amountInCents * int64(factor)}, nil
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amountInCents == other.amountInCents
}

// IsZero reports whether the amount is zero cents.
func (m Money) IsZero() bool {
	return m.amountInCents == 0
}

// String formats the amount in major units with two decimals, e.g. "225.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amountInCents/100, m.amountInCents%100)
}
