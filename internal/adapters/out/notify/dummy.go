// Package notify contains outbound notification provider adapters.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"
)

const dummyProviderName = "dummy"

// deliveryConfirmation is the payload posted back to the delivery webhook.
type deliveryConfirmation struct {
	InvoiceID string `json:"invoice_id"`
	Provider  string `json:"provider"`
}

// DummyProvider simulates a notification backend. It logs the outgoing
// notification and immediately confirms delivery by posting to the
// application's own webhook endpoint, driving the sending -> sent-to-client
// transition the same way a real provider callback would.
type DummyProvider struct {
	webhookURL string
	client     *http.Client
	logger     *slog.Logger
}

// NewDummyProvider creates a dummy provider that confirms deliveries via
// the given webhook URL.
func NewDummyProvider(webhookURL string, logger *slog.Logger) (*DummyProvider, error) {
	if webhookURL == "" {
		return nil, errs.NewValueIsRequiredError("webhookURL")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &DummyProvider{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
		logger:     logger.With("component", "notify.dummy"),
	}, nil
}

// Name returns the provider registry key.
func (p *DummyProvider) Name() string {
	return dummyProviderName
}

// SendInvoiceNotification logs the notification and confirms delivery.
func (p *DummyProvider) SendInvoiceNotification(ctx context.Context, invoiceID kernel.InvoiceID,
	email kernel.CustomerEmail, subject string, body string) error {
	p.logger.Info("sending invoice notification",
		"invoice_id", invoiceID, "to", email, "subject", subject, "body_length", len(body))

	p.confirmDelivery(ctx, invoiceID)
	return nil
}

// SendDefaultInvoiceNotification logs the standard notification and confirms delivery.
func (p *DummyProvider) SendDefaultInvoiceNotification(ctx context.Context,
	invoiceID kernel.InvoiceID, email kernel.CustomerEmail) error {
	return p.SendInvoiceNotification(ctx, invoiceID, email, defaultSubject, defaultBody(invoiceID))
}

// confirmDelivery posts the delivery confirmation to the webhook endpoint.
// A confirmation failure does not fail the send: the invoice simply stays in
// the sending state until the monitor job reports it.
func (p *DummyProvider) confirmDelivery(ctx context.Context, invoiceID kernel.InvoiceID) {
	payload, err := json.Marshal(deliveryConfirmation{
		InvoiceID: invoiceID.String(),
		Provider:  dummyProviderName,
	})
	if err != nil {
		p.logger.Error("delivery confirmation encode failed", "invoice_id", invoiceID, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, bytes.NewReader(payload))
	if err != nil {
		p.logger.Error("delivery confirmation request failed", "invoice_id", invoiceID, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("delivery confirmation post failed", "invoice_id", invoiceID, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		p.logger.Error("delivery confirmation rejected",
			"invoice_id", invoiceID, "status", resp.StatusCode)
		return
	}

	p.logger.Info("delivery confirmed", "invoice_id", invoiceID)
}
