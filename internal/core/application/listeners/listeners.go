// Package listeners reacts to domain events published after command
// handlers commit. Listeners are best-effort: they log failures instead of
// propagating them back to the operation that raised the event.
package listeners

import (
	"context"
	"errors"
	"log/slog"

	"invoicing/internal/core/application/notifications"
	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/pkg/errs"
)

// InvoiceCreatedListener records new invoices in the application log.
type InvoiceCreatedListener struct {
	logger *slog.Logger
}

// NewInvoiceCreatedListener creates a listener for invoice.created events.
func NewInvoiceCreatedListener(logger *slog.Logger) *InvoiceCreatedListener {
	return &InvoiceCreatedListener{logger: logger}
}

// Handle logs the newly created invoice.
func (l *InvoiceCreatedListener) Handle(_ context.Context, event invoice.DomainEvent) error {
	created, ok := event.(invoice.InvoiceCreated)
	if !ok {
		return errs.NewValueIsInvalidError("event")
	}

	l.logger.Info("invoice created",
		"invoice_id", created.InvoiceID, "customer_email", created.CustomerEmail)
	return nil
}

// InvoiceSentListener triggers customer notification delivery when an
// invoice enters the sending state.
type InvoiceSentListener struct {
	orchestrator *notifications.Orchestrator
	logger       *slog.Logger
}

// NewInvoiceSentListener creates a listener for invoice.sent events.
func NewInvoiceSentListener(orchestrator *notifications.Orchestrator,
	logger *slog.Logger) *InvoiceSentListener {
	return &InvoiceSentListener{orchestrator: orchestrator, logger: logger}
}

// Handle asks the notification orchestrator to deliver the default
// notification for the sent invoice. The invoice stays in the sending state
// until a provider confirms delivery through the webhook endpoint, so a
// failed send here only produces a log entry.
func (l *InvoiceSentListener) Handle(ctx context.Context, event invoice.DomainEvent) error {
	sent, ok := event.(invoice.InvoiceSent)
	if !ok {
		return errs.NewValueIsInvalidError("event")
	}

	if err := l.orchestrator.SendDefaultInvoiceNotification(ctx, sent.InvoiceID, sent.CustomerEmail); err != nil {
		l.logger.Error("invoice notification send failed",
			"invoice_id", sent.InvoiceID, "error", err)
		return err
	}

	l.logger.Info("invoice notification sent", "invoice_id", sent.InvoiceID)
	return nil
}

// NotificationDeliveredListener finalizes the invoice lifecycle when a
// provider confirms delivery, moving the invoice to sent-to-client.
type NotificationDeliveredListener struct {
	markHandler commands.MarkInvoiceAsSentCommandHandler
	logger      *slog.Logger
}

// NewNotificationDeliveredListener creates a listener for
// invoice.notification-delivered events.
func NewNotificationDeliveredListener(markHandler commands.MarkInvoiceAsSentCommandHandler,
	logger *slog.Logger) *NotificationDeliveredListener {
	return &NotificationDeliveredListener{markHandler: markHandler, logger: logger}
}

// Handle marks the confirmed invoice as sent to the client.
// Confirmations for unknown invoices and invoices that already left the
// sending state are dropped with a warning; providers may deliver the same
// confirmation more than once.
func (l *NotificationDeliveredListener) Handle(ctx context.Context, event invoice.DomainEvent) error {
	delivered, ok := event.(invoice.NotificationDelivered)
	if !ok {
		return errs.NewValueIsInvalidError("event")
	}

	cmd, err := commands.NewMarkInvoiceAsSentCommand(delivered.InvoiceID)
	if err != nil {
		return err
	}

	if err = l.markHandler.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrInvalidState) {
			l.logger.Warn("delivery confirmation dropped",
				"invoice_id", delivered.InvoiceID, "provider", delivered.ProviderName, "error", err)
			return nil
		}
		return err
	}

	l.logger.Info("invoice marked as sent to client",
		"invoice_id", delivered.InvoiceID, "provider", delivered.ProviderName)
	return nil
}
