package kernel

import (
	"strings"

	"invoicing/internal/pkg/errs"
)

// maxNameLength bounds customer and product names, matching the column width
// in storage.
const maxNameLength = 255

// validateName enforces the shared rules for bounded display names:
// non-empty after trimming and at most maxNameLength characters.
func validateName(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if len(value) > maxNameLength {
		return errs.NewValueIsOutOfRangeError(paramName, len(value), 1, maxNameLength)
	}
	return nil
}

// CustomerName is the display name of the customer an invoice is billed to.
// Non-empty, at most 255 characters. The zero value is invalid.
type CustomerName struct {
	value string
}

// NewCustomerName creates a validated CustomerName.
func NewCustomerName(value string) (CustomerName, error) {
	if err := validateName("customerName", value); err != nil {
		return CustomerName{}, err
	}
	return CustomerName{value: value}, nil
}

// Value returns the raw name.
func (n CustomerName) Value() string {
	return n.value
}

// IsEqual compares two customer names for equality.
func (n CustomerName) IsEqual(other CustomerName) bool {
	return n.value == other.value
}

// Validate checks that the CustomerName was created via NewCustomerName.
func (n CustomerName) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("customer name must be created via NewCustomerName")
	}
	return nil
}

func (n CustomerName) String() string {
	return n.value
}

// ProductName is the display name of a billed product on an invoice line.
// Non-empty, at most 255 characters. The zero value is invalid.
type ProductName struct {
	value string
}

// NewProductName creates a validated ProductName.
func NewProductName(value string) (ProductName, error) {
	if err := validateName("productName", value); err != nil {
		return ProductName{}, err
	}
	return ProductName{value: value}, nil
}

// Value returns the raw name.
func (n ProductName) Value() string {
	return n.value
}

// IsEqual compares two product names for equality.
func (n ProductName) IsEqual(other ProductName) bool {
	return n.value == other.value
}

// Validate checks that the ProductName was created via NewProductName.
func (n ProductName) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("product name must be created via NewProductName")
	}
	return nil
}

func (n ProductName) String() string {
	return n.value
}
