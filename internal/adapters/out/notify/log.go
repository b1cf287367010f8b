package notify

import (
	"context"
	"log/slog"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"
)

const logProviderName = "log"

// LogProvider writes notifications to the application log and never confirms
// delivery. Useful as a secondary fan-out target and in environments without
// a reachable webhook.
type LogProvider struct {
	logger *slog.Logger
}

// NewLogProvider creates a log-only notification provider.
func NewLogProvider(logger *slog.Logger) (*LogProvider, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &LogProvider{logger: logger.With("component", "notify.log")}, nil
}

// Name returns the provider registry key.
func (p *LogProvider) Name() string {
	return logProviderName
}

// SendInvoiceNotification logs the notification.
func (p *LogProvider) SendInvoiceNotification(_ context.Context, invoiceID kernel.InvoiceID,
	email kernel.CustomerEmail, subject string, body string) error {
	p.logger.Info("invoice notification",
		"invoice_id", invoiceID, "to", email, "subject", subject, "body", body)
	return nil
}

// SendDefaultInvoiceNotification logs the standard notification.
func (p *LogProvider) SendDefaultInvoiceNotification(ctx context.Context,
	invoiceID kernel.InvoiceID, email kernel.CustomerEmail) error {
	return p.SendInvoiceNotification(ctx, invoiceID, email, defaultSubject, defaultBody(invoiceID))
}
