package kernel

import (
	"fmt"

	"invoicing/internal/pkg/errs"
)

// Quantity represents a positive count of billed units on an invoice line.
// The zero value is invalid - use NewQuantity.
type Quantity struct {
	value int
}

// NewQuantity creates a Quantity. The value must be greater than zero.
func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", value))
	}
	return Quantity{value: value}, nil
}

// Value returns the unit count.
func (q Quantity) Value() int {
	return q.value
}

// IsEqual compares two quantities for equality.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// Validate checks that the Quantity was created via NewQuantity.
func (q Quantity) Validate() error {
	if q.value <= 0 {
		return errs.NewValueIsRequiredError("quantity must be created via NewQuantity")
	}
	return nil
}

// String returns the decimal representation of the quantity.
func (q Quantity) String() string {
	return fmt.Sprintf("%d", q.value)
}
