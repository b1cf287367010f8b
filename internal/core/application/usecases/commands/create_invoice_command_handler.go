package commands

import (
	"context"
	"log/slog"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/core/ports"
)

// CreateInvoiceCommandHandler handles the business logic for invoice creation.
// Creates new invoices in draft status and reports the generated identifier.
//
// Example:
//
//	handler := NewCreateInvoiceCommandHandler(uowFactory, dispatcher, logger)
//	cmd, _ := NewCreateInvoiceCommand(name, email, lines)
//
//	invoiceID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("invoice creation failed: %w", err)
//	}
//	fmt.Printf("Invoice %s created as a draft", invoiceID)
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	dispatcher ports.EventDispatcher
	logger     *slog.Logger
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation operations.
// Requires an InvoiceUoWFactory for transactional persistence.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory,
	dispatcher ports.EventDispatcher, logger *slog.Logger) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes the invoice creation command.
// Generates the invoice identifier, persists the draft, and publishes the
// buffered domain events after the transaction commits.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context,
	cmd CreateInvoiceCommand) (kernel.InvoiceID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.InvoiceID{}, err
	}

	newInvoice, err := invoice.NewInvoice(cmd.CustomerName(), cmd.CustomerEmail(), cmd.Lines()...)
	if err != nil {
		return kernel.InvoiceID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.InvoiceID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	if err = invoiceRepo.Add(ctx, newInvoice); err != nil {
		return kernel.InvoiceID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.InvoiceID{}, err
	}

	publishDomainEvents(ctx, h.dispatcher, h.logger, newInvoice)

	return newInvoice.ID(), nil
}
