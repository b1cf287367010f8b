package ports

import (
	"context"

	"invoicing/internal/core/domain/model/kernel"
)

// NotificationProvider is an outbound channel that delivers invoice
// notifications to a customer. Implementations are registered with the
// notification orchestrator under their Name.
type NotificationProvider interface {
	// Name returns the unique registry key of the provider, e.g. "dummy".
	Name() string

	// SendInvoiceNotification delivers a notification with an explicit
	// subject and body for the given invoice.
	SendInvoiceNotification(ctx context.Context, invoiceID kernel.InvoiceID,
		email kernel.CustomerEmail, subject string, body string) error

	// SendDefaultInvoiceNotification delivers the provider's standard
	// "invoice sent" notification for the given invoice.
	SendDefaultInvoiceNotification(ctx context.Context, invoiceID kernel.InvoiceID,
		email kernel.CustomerEmail) error
}
