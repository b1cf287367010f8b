package commands

import (
	"errors"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand represents a request to create a new invoice in draft
// status. Encapsulates the customer details and the initial set of lines.
//
// Example:
//
//	name, _ := kernel.NewCustomerName("Jane Smith")
//	email, _ := kernel.NewCustomerEmail("jane.smith@example.com")
//	cmd, err := NewCreateInvoiceCommand(name, email, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid invoice data: %w", err)
//	}
//
//	handler := NewCreateInvoiceCommandHandler(uowFactory, dispatcher, logger)
//	invoiceID, err := handler.Handle(ctx, cmd)
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	customerName  kernel.CustomerName
	customerEmail kernel.CustomerEmail
	lines         []invoice.Line

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to register a new invoice.
// Validates the customer name, email, and every supplied line.
// An empty line set is allowed; lines can be added while the invoice is a draft.
func NewCreateInvoiceCommand(customerName kernel.CustomerName, customerEmail kernel.CustomerEmail,
	lines []invoice.Line) (CreateInvoiceCommand, error) {
	createCommand := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setCustomerName(customerName),
		createCommand.setCustomerEmail(customerEmail),
		createCommand.setLines(lines),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateInvoiceCommandIsNotConstructed if validation fails.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// CustomerName returns the billed customer's display name.
func (c CreateInvoiceCommand) CustomerName() kernel.CustomerName {
	return c.customerName
}

// CustomerEmail returns the address notifications are delivered to.
func (c CreateInvoiceCommand) CustomerEmail() kernel.CustomerEmail {
	return c.customerEmail
}

// Lines returns the initial invoice lines in the order they were supplied.
func (c CreateInvoiceCommand) Lines() []invoice.Line {
	lines := make([]invoice.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateInvoiceCommand) setCustomerName(customerName kernel.CustomerName) error {
	if err := customerName.Validate(); err != nil {
		return err
	}

	c.customerName = customerName
	return nil
}

func (c *CreateInvoiceCommand) setCustomerEmail(customerEmail kernel.CustomerEmail) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}

	c.customerEmail = customerEmail
	return nil
}

func (c *CreateInvoiceCommand) setLines(lines []invoice.Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]invoice.Line, len(lines))
	copy(c.lines, lines)
	return nil
}
