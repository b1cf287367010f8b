package commands

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrDeleteInvoiceCommandIsNotConstructed = errors.New(
	"DeleteInvoiceCommand must be created via NewDeleteInvoiceCommand constructor",
)

// DeleteInvoiceCommand represents a request to remove an invoice and its
// lines from storage.
type DeleteInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.InvoiceID

	guard guard.ConstructorGuard
}

// NewDeleteInvoiceCommand creates a command to delete the given invoice.
func NewDeleteInvoiceCommand(invoiceID kernel.InvoiceID) (DeleteInvoiceCommand, error) {
	deleteCommand := DeleteInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setInvoiceID(invoiceID); err != nil {
		return DeleteInvoiceCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteInvoiceCommandIsNotConstructed if validation fails.
func (c DeleteInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier of the invoice to delete.
func (c DeleteInvoiceCommand) InvoiceID() kernel.InvoiceID {
	return c.invoiceID
}

func (c *DeleteInvoiceCommand) setInvoiceID(invoiceID kernel.InvoiceID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}
