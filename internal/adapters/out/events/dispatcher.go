// Package events provides an in-process implementation of the event
// dispatcher port. Events are delivered synchronously, in subscription
// order, within the goroutine that dispatches them.
package events

import (
	"context"
	"log/slog"
	"sync"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/ports"
	"invoicing/internal/pkg/errs"
)

// InProcessDispatcher routes domain events to handlers registered by event
// name. Safe for concurrent use; subscriptions normally all happen during
// composition before any dispatch.
type InProcessDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
	logger   *slog.Logger
}

// NewInProcessDispatcher creates an empty dispatcher.
func NewInProcessDispatcher(logger *slog.Logger) (*InProcessDispatcher, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &InProcessDispatcher{
		handlers: make(map[string][]ports.EventHandler),
		logger:   logger.With("component", "events"),
	}, nil
}

// Subscribe registers a handler for the given event name.
func (d *InProcessDispatcher) Subscribe(eventName string, handler ports.EventHandler) {
	if handler == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Dispatch delivers the event to every subscribed handler in registration
// order. All handlers run even when an earlier one fails; the first handler
// error is returned after the full pass.
func (d *InProcessDispatcher) Dispatch(ctx context.Context, event invoice.DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers[event.EventName()]
	d.mu.RUnlock()

	if len(handlers) == 0 {
		d.logger.Debug("no handlers for event", "event", event.EventName())
		return nil
	}

	var firstErr error
	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			d.logger.Warn("event handler failed", "event", event.EventName(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
