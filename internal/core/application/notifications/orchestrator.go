// Package notifications coordinates invoice notification delivery across
// the registered provider backends.
package notifications

import (
	"context"
	"log/slog"
	"sort"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/core/ports"
	"invoicing/internal/pkg/errs"
)

// Orchestrator routes invoice notifications to one or all of the registered
// providers. Providers are keyed by their Name; the default provider is the
// one used when callers do not pick a backend explicitly.
type Orchestrator struct {
	providers       map[string]ports.NotificationProvider
	defaultProvider string
	logger          *slog.Logger
}

// NewOrchestrator creates an orchestrator over the given providers.
// The default provider name may reference a provider that is not registered;
// this is only reported when a default send is actually attempted.
func NewOrchestrator(providers []ports.NotificationProvider, defaultProvider string,
	logger *slog.Logger) (*Orchestrator, error) {
	if len(providers) == 0 {
		return nil, errs.NewValueIsRequiredError("providers")
	}
	if defaultProvider == "" {
		return nil, errs.NewValueIsRequiredError("defaultProvider")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	registry := make(map[string]ports.NotificationProvider, len(providers))
	for _, provider := range providers {
		if _, exists := registry[provider.Name()]; exists {
			return nil, errs.NewValueIsInvalidError("providers")
		}
		registry[provider.Name()] = provider
	}

	return &Orchestrator{
		providers:       registry,
		defaultProvider: defaultProvider,
		logger:          logger,
	}, nil
}

// ProviderNames returns the registered provider names in sorted order.
func (o *Orchestrator) ProviderNames() []string {
	names := make([]string, 0, len(o.providers))
	for name := range o.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SendDefaultInvoiceNotification delivers the standard notification through
// the configured default provider. Fails with a ConfigurationError when the
// default provider name does not resolve to a registered provider.
func (o *Orchestrator) SendDefaultInvoiceNotification(ctx context.Context,
	invoiceID kernel.InvoiceID, email kernel.CustomerEmail) error {
	provider, exists := o.providers[o.defaultProvider]
	if !exists {
		return errs.NewConfigurationError(
			"default notification provider is not registered: " + o.defaultProvider)
	}

	if err := provider.SendDefaultInvoiceNotification(ctx, invoiceID, email); err != nil {
		return errs.NewDeliveryError(provider.Name(), err)
	}
	return nil
}

// SendViaProvider delivers a notification through the named provider.
// Fails with an ObjectNotFoundError when no provider is registered under
// that name.
func (o *Orchestrator) SendViaProvider(ctx context.Context, providerName string,
	invoiceID kernel.InvoiceID, email kernel.CustomerEmail, subject string, body string) error {
	provider, exists := o.providers[providerName]
	if !exists {
		return errs.NewObjectNotFoundError("providerName", providerName)
	}

	if err := provider.SendInvoiceNotification(ctx, invoiceID, email, subject, body); err != nil {
		return errs.NewDeliveryError(provider.Name(), err)
	}
	return nil
}

// SendViaAllProviders fans a notification out to every registered provider
// in sorted name order. A failing provider does not prevent the remaining
// providers from being attempted; each failure is wrapped in a DeliveryError
// and all of them are collected into a single NotificationFanOutError.
func (o *Orchestrator) SendViaAllProviders(ctx context.Context,
	invoiceID kernel.InvoiceID, email kernel.CustomerEmail, subject string, body string) error {
	failures := make(map[string]error)
	for _, name := range o.ProviderNames() {
		provider := o.providers[name]
		if err := provider.SendInvoiceNotification(ctx, invoiceID, email, subject, body); err != nil {
			o.logger.Warn("notification provider failed",
				"provider", name, "invoice_id", invoiceID, "error", err)
			failures[name] = errs.NewDeliveryError(name, err)
		}
	}

	if len(failures) > 0 {
		return errs.NewNotificationFanOutError(failures)
	}
	return nil
}
