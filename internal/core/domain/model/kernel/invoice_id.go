package kernel

import (
	"invoicing/internal/pkg/errs"

	"github.com/google/uuid"
)

// invoiceIDPrefix marks invoice identifiers in logs, URLs, and storage.
const invoiceIDPrefix = "inv_"

// ErrInvoiceIDIsNotConstructed indicates that an InvoiceID was not created
// through NewInvoiceID or InvoiceIDFromString. The zero value is invalid.
var ErrInvoiceIDIsNotConstructed = errs.NewValueIsRequiredError(
	"invoice ID must be created via NewInvoiceID or InvoiceIDFromString")

// InvoiceID is an opaque unique identifier for an invoice aggregate.
// It is generated once at creation time and never changes afterwards.
//
// The identifier is an "inv_"-prefixed string backed by a random UUID,
// treated as opaque everywhere outside this type.
//
// Example:
//
//	id := kernel.NewInvoiceID()
//	fmt.Println(id.String()) // e.g. "inv_550e8400-e29b-41d4-a716-446655440000"
type InvoiceID struct {
	value string
}

// NewInvoiceID generates a new unique invoice identifier.
func NewInvoiceID() InvoiceID {
	return InvoiceID{value: invoiceIDPrefix + uuid.NewString()}
}

// InvoiceIDFromString reconstructs an InvoiceID from its string form, as
// stored in persistence or received from external systems. The string is
// opaque: any non-empty value is accepted.
func InvoiceIDFromString(s string) (InvoiceID, error) {
	if s == "" {
		return InvoiceID{}, errs.NewValueIsRequiredError("invoiceId")
	}
	return InvoiceID{value: s}, nil
}

// String returns the identifier's string representation.
func (id InvoiceID) String() string {
	return id.value
}

// IsEqual compares two invoice identifiers for equality.
func (id InvoiceID) IsEqual(other InvoiceID) bool {
	return id.value == other.value
}

// Validate checks that the InvoiceID was properly constructed.
// Returns ErrInvoiceIDIsNotConstructed for the zero value.
func (id InvoiceID) Validate() error {
	if id.value == "" {
		return ErrInvoiceIDIsNotConstructed
	}
	return nil
}
