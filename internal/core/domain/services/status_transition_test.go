package services_test

import (
	"testing"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/core/domain/services"
	"invoicing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceWithLine(t *testing.T) *invoice.Invoice {
	t.Helper()

	name, err := kernel.NewCustomerName("Jane Smith")
	require.NoError(t, err)
	email, err := kernel.NewCustomerEmail("jane.smith@example.com")
	require.NoError(t, err)
	inv, err := invoice.NewInvoice(name, email)
	require.NoError(t, err)

	product, err := kernel.NewProductName("Widget")
	require.NoError(t, err)
	qty, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	price, err := kernel.NewMoney(100)
	require.NoError(t, err)
	require.NoError(t, inv.AddLine(product, qty, price))

	return inv
}

// TestStatusTransitionService_IsValidTransition checks all 9 ordered pairs:
// exactly 2 are valid, the remaining 7 (self-pairs, reverse edges, skips)
// are not.
func TestStatusTransitionService_IsValidTransition(t *testing.T) {
	svc := services.NewStatusTransitionService()

	tests := []struct {
		from, to invoice.Status
		valid    bool
	}{
		{invoice.StatusDraft, invoice.StatusDraft, false},
		{invoice.StatusDraft, invoice.StatusSending, true},
		{invoice.StatusDraft, invoice.StatusSentToClient, false},
		{invoice.StatusSending, invoice.StatusDraft, false},
		{invoice.StatusSending, invoice.StatusSending, false},
		{invoice.StatusSending, invoice.StatusSentToClient, true},
		{invoice.StatusSentToClient, invoice.StatusDraft, false},
		{invoice.StatusSentToClient, invoice.StatusSending, false},
		{invoice.StatusSentToClient, invoice.StatusSentToClient, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.valid, svc.IsValidTransition(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestStatusTransitionService_TransitionTo(t *testing.T) {
	svc := services.NewStatusTransitionService()

	t.Run("draft_to_sending_dispatches_send", func(t *testing.T) {
		inv := newInvoiceWithLine(t)
		inv.ClearDomainEvents()

		require.NoError(t, svc.TransitionTo(inv, invoice.StatusSending))

		assert.Equal(t, invoice.StatusSending, inv.Status())
		require.Len(t, inv.DomainEvents(), 1)
		assert.Equal(t, invoice.EventNameInvoiceSent, inv.DomainEvents()[0].EventName())
	})

	t.Run("sending_to_sent_to_client_dispatches_mark", func(t *testing.T) {
		inv := newInvoiceWithLine(t)
		require.NoError(t, inv.Send())

		require.NoError(t, svc.TransitionTo(inv, invoice.StatusSentToClient))

		assert.Equal(t, invoice.StatusSentToClient, inv.Status())
	})

	t.Run("illegal_edge_fails_with_invalid_state", func(t *testing.T) {
		inv := newInvoiceWithLine(t)

		err := svc.TransitionTo(inv, invoice.StatusSentToClient)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, invoice.StatusDraft, inv.Status())
	})

	t.Run("self_transition_fails", func(t *testing.T) {
		inv := newInvoiceWithLine(t)

		err := svc.TransitionTo(inv, invoice.StatusDraft)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("unconstructed_invoice_fails", func(t *testing.T) {
		var inv invoice.Invoice

		err := svc.TransitionTo(&inv, invoice.StatusSending)

		require.ErrorIs(t, err, invoice.ErrInvoiceIsNotConstructed)
	})
}

func TestStatusTransitionService_PossibleTransitions(t *testing.T) {
	svc := services.NewStatusTransitionService()

	assert.Equal(t, []invoice.Status{invoice.StatusSending},
		svc.PossibleTransitions(invoice.StatusDraft))
	assert.Equal(t, []invoice.Status{invoice.StatusSentToClient},
		svc.PossibleTransitions(invoice.StatusSending))
	assert.Empty(t, svc.PossibleTransitions(invoice.StatusSentToClient))
}

func TestStatusTransitionService_CanBeChanged(t *testing.T) {
	svc := services.NewStatusTransitionService()

	assert.True(t, svc.CanBeChanged(invoice.StatusDraft))
	assert.True(t, svc.CanBeChanged(invoice.StatusSending))
	assert.False(t, svc.CanBeChanged(invoice.StatusSentToClient))
}
