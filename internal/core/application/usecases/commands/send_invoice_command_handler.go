package commands

import (
	"context"
	"log/slog"

	"invoicing/internal/core/ports"
)

// SendInvoiceCommandHandler handles the transition of a draft invoice into
// the sending state. The actual notification delivery happens asynchronously
// via the invoice.sent domain event published after commit.
type SendInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	dispatcher ports.EventDispatcher
	logger     *slog.Logger
}

// NewSendInvoiceCommandHandler creates a handler for invoice send operations.
func NewSendInvoiceCommandHandler(uowFactory InvoiceUoWFactory,
	dispatcher ports.EventDispatcher, logger *slog.Logger) SendInvoiceCommandHandler {
	return SendInvoiceCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes the send command.
// Loads the invoice, applies the draft -> sending transition, and persists
// the change. Fails with an InvalidStateError when the invoice is not a
// sendable draft, and with an ObjectNotFoundError when it does not exist.
func (h *SendInvoiceCommandHandler) Handle(ctx context.Context, cmd SendInvoiceCommand) error {
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
	aggregate, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = aggregate.Send(); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishDomainEvents(ctx, h.dispatcher, h.logger, aggregate)

	return nil
}
