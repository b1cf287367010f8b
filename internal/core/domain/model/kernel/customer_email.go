package kernel

import (
	"net/mail"
	"strings"

	"invoicing/internal/pkg/errs"
)

// maxEmailLength bounds customer email addresses, matching the column width
// in storage.
const maxEmailLength = 255

// CustomerEmail is the validated email address an invoice is delivered to.
// Non-empty, valid address grammar, at most 255 characters.
// The zero value is invalid.
type CustomerEmail struct {
	value string
}

// NewCustomerEmail creates a validated CustomerEmail.
// The address must parse as a bare RFC 5322 address, e.g. "jane@example.com";
// display names ("Jane <jane@example.com>") are rejected.
func NewCustomerEmail(value string) (CustomerEmail, error) {
	if strings.TrimSpace(value) == "" {
		return CustomerEmail{}, errs.NewValueIsRequiredError("customerEmail")
	}
	if len(value) > maxEmailLength {
		return CustomerEmail{}, errs.NewValueIsOutOfRangeError("customerEmail", len(value), 1, maxEmailLength)
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return CustomerEmail{}, errs.NewValueIsInvalidErrorWithCause("customerEmail", err)
	}

	return CustomerEmail{value: value}, nil
}

// Value returns the raw address.
func (e CustomerEmail) Value() string {
	return e.value
}

// IsEqual compares two addresses for equality.
func (e CustomerEmail) IsEqual(other CustomerEmail) bool {
	return e.value == other.value
}

// Validate checks that the CustomerEmail was created via NewCustomerEmail.
func (e CustomerEmail) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("customer email must be created via NewCustomerEmail")
	}
	return nil
}

func (e CustomerEmail) String() string {
	return e.value
}
