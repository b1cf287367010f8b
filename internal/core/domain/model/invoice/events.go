package invoice

import (
	"time"

	"invoicing/internal/core/domain/model/kernel"
)

// Event names used to route domain events to their handlers.
const (
	EventNameInvoiceCreated        = "invoice.created"
	EventNameInvoiceSent           = "invoice.sent"
	EventNameNotificationDelivered = "invoice.notification-delivered"
)

// DomainEvent is an immutable fact about something that already happened to
// an invoice aggregate. Events are buffered on the aggregate and drained by
// the caller that owns the mutation's transaction boundary.
type DomainEvent interface {
	// EventName identifies the event type for handler routing.
	EventName() string
}

// InvoiceCreated is buffered when a new invoice is created in draft status.
// Reconstitution from storage never re-emits it.
type InvoiceCreated struct {
	InvoiceID     kernel.InvoiceID
	CustomerEmail kernel.CustomerEmail
}

func (InvoiceCreated) EventName() string {
	return EventNameInvoiceCreated
}

// InvoiceSent is buffered when a draft invoice is handed to the notification
// layer, i.e. on the draft -> sending transition.
type InvoiceSent struct {
	InvoiceID     kernel.InvoiceID
	CustomerEmail kernel.CustomerEmail
}

func (InvoiceSent) EventName() string {
	return EventNameInvoiceSent
}

// NotificationDelivered records an asynchronous delivery confirmation from a
// notification provider. It is not emitted by the aggregate itself: the
// webhook entry point constructs it and hands it to the event dispatcher,
// which is how an invoice advances from sending to sent-to-client without a
// direct caller-driven status update.
type NotificationDelivered struct {
	InvoiceID    kernel.InvoiceID
	ProviderName string
	DeliveredAt  time.Time
}

func (NotificationDelivered) EventName() string {
	return EventNameNotificationDelivered
}
