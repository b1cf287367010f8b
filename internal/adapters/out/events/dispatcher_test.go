package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"invoicing/internal/adapters/out/events"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createdEvent() invoice.InvoiceCreated {
	return invoice.InvoiceCreated{InvoiceID: kernel.NewInvoiceID()}
}

func TestInProcessDispatcher_DeliversInSubscriptionOrder(t *testing.T) {
	dispatcher, err := events.NewInProcessDispatcher(testLogger())
	require.NoError(t, err)

	var calls []string
	dispatcher.Subscribe(invoice.EventNameInvoiceCreated,
		ports.EventHandlerFunc(func(context.Context, invoice.DomainEvent) error {
			calls = append(calls, "first")
			return nil
		}))
	dispatcher.Subscribe(invoice.EventNameInvoiceCreated,
		ports.EventHandlerFunc(func(context.Context, invoice.DomainEvent) error {
			calls = append(calls, "second")
			return nil
		}))

	require.NoError(t, dispatcher.Dispatch(t.Context(), createdEvent()))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestInProcessDispatcher_NoHandlers_IsNoOp(t *testing.T) {
	dispatcher, err := events.NewInProcessDispatcher(testLogger())
	require.NoError(t, err)

	require.NoError(t, dispatcher.Dispatch(t.Context(), createdEvent()))
}

func TestInProcessDispatcher_RoutesByEventName(t *testing.T) {
	dispatcher, err := events.NewInProcessDispatcher(testLogger())
	require.NoError(t, err)

	var sentCalls int
	dispatcher.Subscribe(invoice.EventNameInvoiceSent,
		ports.EventHandlerFunc(func(context.Context, invoice.DomainEvent) error {
			sentCalls++
			return nil
		}))

	require.NoError(t, dispatcher.Dispatch(t.Context(), createdEvent()))
	assert.Zero(t, sentCalls)
}

func TestInProcessDispatcher_FailingHandlerDoesNotStopOthers(t *testing.T) {
	dispatcher, err := events.NewInProcessDispatcher(testLogger())
	require.NoError(t, err)

	handlerErr := errors.New("handler failed")
	var secondCalled bool
	dispatcher.Subscribe(invoice.EventNameInvoiceCreated,
		ports.EventHandlerFunc(func(context.Context, invoice.DomainEvent) error {
			return handlerErr
		}))
	dispatcher.Subscribe(invoice.EventNameInvoiceCreated,
		ports.EventHandlerFunc(func(context.Context, invoice.DomainEvent) error {
			secondCalled = true
			return nil
		}))

	err = dispatcher.Dispatch(t.Context(), createdEvent())
	require.ErrorIs(t, err, handlerErr)
	assert.True(t, secondCalled)
}
