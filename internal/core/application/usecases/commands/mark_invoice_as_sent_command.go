package commands

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrMarkInvoiceAsSentCommandIsNotConstructed = errors.New(
	"MarkInvoiceAsSentCommand must be created via NewMarkInvoiceAsSentCommand constructor",
)

// MarkInvoiceAsSentCommand represents a delivery confirmation for an invoice
// in the sending state. Raised when a notification provider reports that the
// customer received the notification.
type MarkInvoiceAsSentCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.InvoiceID

	guard guard.ConstructorGuard
}

// NewMarkInvoiceAsSentCommand creates a command to confirm delivery for the
// given invoice.
func NewMarkInvoiceAsSentCommand(invoiceID kernel.InvoiceID) (MarkInvoiceAsSentCommand, error) {
	markCommand := MarkInvoiceAsSentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := markCommand.setInvoiceID(invoiceID); err != nil {
		return MarkInvoiceAsSentCommand{}, err
	}

	return markCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkInvoiceAsSentCommandIsNotConstructed if validation fails.
func (c MarkInvoiceAsSentCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoiceAsSentCommandIsNotConstructed)
}

// InvoiceID returns the identifier of the confirmed invoice.
func (c MarkInvoiceAsSentCommand) InvoiceID() kernel.InvoiceID {
	return c.invoiceID
}

func (c *MarkInvoiceAsSentCommand) setInvoiceID(invoiceID kernel.InvoiceID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}
