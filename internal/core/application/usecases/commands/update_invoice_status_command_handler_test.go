package commands_test

import (
	"testing"

	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/core/domain/services"
	"invoicing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateInvoiceStatusCommand(t *testing.T) {
	id := kernel.NewInvoiceID()

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewUpdateInvoiceStatusCommand(id, "sending")
		require.NoError(t, err)
		assert.Equal(t, invoice.StatusSending, cmd.TargetStatus())
	})

	t.Run("rejects_unknown_status_string", func(t *testing.T) {
		_, err := commands.NewUpdateInvoiceStatusCommand(id, "archived")
		require.Error(t, err)
	})

	t.Run("rejects_zero_value_id", func(t *testing.T) {
		_, err := commands.NewUpdateInvoiceStatusCommand(kernel.InvoiceID{}, "sending")
		require.Error(t, err)
	})
}

func newUpdateStatusHandler(factory commands.InvoiceUoWFactory,
	dispatcher *MockEventDispatcher) commands.UpdateInvoiceStatusCommandHandler {
	return commands.NewUpdateInvoiceStatusCommandHandler(
		factory, services.NewStatusTransitionService(), dispatcher, testLogger())
}

func TestUpdateInvoiceStatusCommandHandler_Handle_DraftToSending(t *testing.T) {
	ctx := t.Context()
	aggregate := draftInvoice(t)
	cmd, err := commands.NewUpdateInvoiceStatusCommand(aggregate.ID(), "sending")
	require.NoError(t, err)

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("invoice.InvoiceSent")).Return(nil).Once()

	h := newUpdateStatusHandler(factory, dispatcher)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, invoice.StatusSending, aggregate.Status())
	dispatcher.AssertExpectations(t)
}

func TestUpdateInvoiceStatusCommandHandler_Handle_SendingToSentToClient(t *testing.T) {
	ctx := t.Context()
	aggregate := sendingInvoice(t)
	cmd, err := commands.NewUpdateInvoiceStatusCommand(aggregate.ID(), "sent-to-client")
	require.NoError(t, err)

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newUpdateStatusHandler(factory, new(MockEventDispatcher))
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, invoice.StatusSentToClient, aggregate.Status())
}

func TestUpdateInvoiceStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := draftInvoice(t)
	cmd, err := commands.NewUpdateInvoiceStatusCommand(aggregate.ID(), "sent-to-client")
	require.NoError(t, err)

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newUpdateStatusHandler(factory, new(MockEventDispatcher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, invoice.StatusDraft, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
