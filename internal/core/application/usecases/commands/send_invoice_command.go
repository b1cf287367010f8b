package commands

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrSendInvoiceCommandIsNotConstructed = errors.New(
	"SendInvoiceCommand must be created via NewSendInvoiceCommand constructor",
)

// SendInvoiceCommand represents a request to move a draft invoice into the
// sending state, which triggers customer notification delivery.
type SendInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.InvoiceID

	guard guard.ConstructorGuard
}

// NewSendInvoiceCommand creates a command to send the given invoice.
func NewSendInvoiceCommand(invoiceID kernel.InvoiceID) (SendInvoiceCommand, error) {
	sendCommand := SendInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sendCommand.setInvoiceID(invoiceID); err != nil {
		return SendInvoiceCommand{}, err
	}

	return sendCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendInvoiceCommandIsNotConstructed if validation fails.
func (c SendInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrSendInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier of the invoice to send.
func (c SendInvoiceCommand) InvoiceID() kernel.InvoiceID {
	return c.invoiceID
}

func (c *SendInvoiceCommand) setInvoiceID(invoiceID kernel.InvoiceID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}
