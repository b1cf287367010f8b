package commands

import (
	"context"
)

// DeleteInvoiceCommandHandler removes invoices from storage.
// Deletion is allowed in any status; the invoice's lines are removed with it.
type DeleteInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewDeleteInvoiceCommandHandler creates a handler for invoice deletion operations.
func NewDeleteInvoiceCommandHandler(uowFactory InvoiceUoWFactory) DeleteInvoiceCommandHandler {
	return DeleteInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Fails with an ObjectNotFoundError when the invoice does not exist.
func (h *DeleteInvoiceCommandHandler) Handle(ctx context.Context, cmd DeleteInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	if err := invoiceRepo.Delete(ctx, cmd.InvoiceID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
