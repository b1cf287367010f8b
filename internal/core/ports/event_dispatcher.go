package ports

import (
	"context"

	"invoicing/internal/core/domain/model/invoice"
)

// EventHandler reacts to a single domain event.
type EventHandler interface {
	// Handle processes the event. Errors are reported to the dispatcher
	// and must not be used for control flow by the publishing side.
	Handle(ctx context.Context, event invoice.DomainEvent) error
}

// EventHandlerFunc adapts a plain function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event invoice.DomainEvent) error

func (f EventHandlerFunc) Handle(ctx context.Context, event invoice.DomainEvent) error {
	return f(ctx, event)
}

// EventDispatcher routes domain events to their registered handlers.
// Events drained from an aggregate after a successful commit are published
// one by one in the order they were raised.
type EventDispatcher interface {
	// Subscribe registers a handler for the given event name.
	// Multiple handlers may subscribe to the same event.
	Subscribe(eventName string, handler EventHandler)

	// Dispatch delivers the event to every handler subscribed to its name.
	Dispatch(ctx context.Context, event invoice.DomainEvent) error
}
