package commands

import (
	"errors"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrUpdateInvoiceStatusCommandIsNotConstructed = errors.New(
	"UpdateInvoiceStatusCommand must be created via NewUpdateInvoiceStatusCommand constructor",
)

// UpdateInvoiceStatusCommand represents a request to move an invoice to an
// explicit target status. Only transitions allowed by the invoice state
// machine succeed.
type UpdateInvoiceStatusCommand struct { //nolint:recvcheck //using for validation
	invoiceID    kernel.InvoiceID
	targetStatus invoice.Status

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceStatusCommand creates a command to transition the given
// invoice. The target status string must name a valid non-unknown status.
func NewUpdateInvoiceStatusCommand(invoiceID kernel.InvoiceID,
	targetStatus string) (UpdateInvoiceStatusCommand, error) {
	updateCommand := UpdateInvoiceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setInvoiceID(invoiceID),
		updateCommand.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateInvoiceStatusCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateInvoiceStatusCommandIsNotConstructed if validation fails.
func (c UpdateInvoiceStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceStatusCommandIsNotConstructed)
}

// InvoiceID returns the identifier of the invoice to transition.
func (c UpdateInvoiceStatusCommand) InvoiceID() kernel.InvoiceID {
	return c.invoiceID
}

// TargetStatus returns the status the invoice should move to.
func (c UpdateInvoiceStatusCommand) TargetStatus() invoice.Status {
	return c.targetStatus
}

func (c *UpdateInvoiceStatusCommand) setInvoiceID(invoiceID kernel.InvoiceID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *UpdateInvoiceStatusCommand) setTargetStatus(targetStatus string) error {
	status, err := invoice.StatusFromString(targetStatus)
	if err != nil {
		return err
	}

	c.targetStatus = status
	return nil
}
