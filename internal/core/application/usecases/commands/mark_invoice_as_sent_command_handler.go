package commands

import (
	"context"
	"log/slog"

	"invoicing/internal/core/ports"
)

// MarkInvoiceAsSentCommandHandler finalizes the invoice lifecycle on
// delivery confirmation, moving the invoice from sending to sent-to-client.
type MarkInvoiceAsSentCommandHandler struct {
	uowFactory InvoiceUoWFactory
	dispatcher ports.EventDispatcher
	logger     *slog.Logger
}

// NewMarkInvoiceAsSentCommandHandler creates a handler for delivery confirmations.
func NewMarkInvoiceAsSentCommandHandler(uowFactory InvoiceUoWFactory,
	dispatcher ports.EventDispatcher, logger *slog.Logger) MarkInvoiceAsSentCommandHandler {
	return MarkInvoiceAsSentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes the delivery confirmation.
// Fails with an ObjectNotFoundError when the invoice does not exist and with
// an InvalidStateError when it is not in the sending state; callers decide
// whether those outcomes are fatal.
func (h *MarkInvoiceAsSentCommandHandler) Handle(ctx context.Context,
	cmd MarkInvoiceAsSentCommand) error {
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

	if err = aggregate.MarkAsSentToClient(); err != nil {
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
