package commands

import (
	"context"
	"log/slog"

	"invoicing/internal/core/domain/services"
	"invoicing/internal/core/ports"
)

// UpdateInvoiceStatusCommandHandler applies explicit status transitions
// through the status transition service, so the same state machine guards
// both the dedicated send operation and direct status updates.
type UpdateInvoiceStatusCommandHandler struct {
	uowFactory        InvoiceUoWFactory
	transitionService services.StatusTransitionService
	dispatcher        ports.EventDispatcher
	logger            *slog.Logger
}

// NewUpdateInvoiceStatusCommandHandler creates a handler for status update operations.
func NewUpdateInvoiceStatusCommandHandler(uowFactory InvoiceUoWFactory,
	transitionService services.StatusTransitionService,
	dispatcher ports.EventDispatcher, logger *slog.Logger) UpdateInvoiceStatusCommandHandler {
	return UpdateInvoiceStatusCommandHandler{
		uowFactory:        uowFactory,
		transitionService: transitionService,
		dispatcher:        dispatcher,
		logger:            logger,
	}
}

// Handle processes the status update command.
// Fails with an InvalidStateError when the transition is not allowed from
// the invoice's current status, and with an UnsupportedTransitionError when
// no operation implements the requested transition.
func (h *UpdateInvoiceStatusCommandHandler) Handle(ctx context.Context,
	cmd UpdateInvoiceStatusCommand) error {
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

	if err = h.transitionService.TransitionTo(aggregate, cmd.TargetStatus()); err != nil {
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
