package invoice

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
)

// Line is an immutable value representing one billable item on an invoice:
// a product name, a positive quantity, and a unit price. Its total price is
// derived, never stored.
type Line struct {
	productName kernel.ProductName
	quantity    kernel.Quantity
	unitPrice   kernel.Money
}

// NewLine creates a Line from validated value objects.
// Returns an error if any component is a zero value.
func NewLine(productName kernel.ProductName, quantity kernel.Quantity, unitPrice kernel.Money) (Line, error) {
	if err := errors.Join(
		productName.Validate(),
		quantity.Validate(),
	); err != nil {
		return Line{}, err
	}

	return Line{
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// Validate checks that the line was built from valid value objects.
func (l Line) Validate() error {
	return errors.Join(
		l.productName.Validate(),
		l.quantity.Validate(),
	)
}

// ProductName returns the billed product's display name.
func (l Line) ProductName() kernel.ProductName {
	return l.productName
}

// Quantity returns the billed unit count.
func (l Line) Quantity() kernel.Quantity {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// TotalPrice returns unitPrice multiplied by quantity.
func (l Line) TotalPrice() kernel.Money {
	// quantity is strictly positive, so the multiplication cannot fail
	total, _ := l.unitPrice.Multiply(l.quantity.Value())
	return total
}
