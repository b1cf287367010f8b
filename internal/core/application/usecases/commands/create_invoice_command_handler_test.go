package commands_test

import (
	"errors"
	"testing"

	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateInvoiceCommand(t *testing.T) commands.CreateInvoiceCommand {
	t.Helper()

	name, err := kernel.NewCustomerName("Jane Smith")
	require.NoError(t, err)
	email, err := kernel.NewCustomerEmail("jane.smith@example.com")
	require.NoError(t, err)
	cmd, err := commands.NewCreateInvoiceCommand(name, email, nil)
	require.NoError(t, err)

	return cmd
}

func TestCreateInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateInvoiceCommand(t)

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("invoice.InvoiceCreated")).Return(nil).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, dispatcher, testLogger())
	invoiceID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, invoiceID.Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateInvoiceCommand{} // not constructed properly
	factory := new(MockInvoiceUoWFactory)
	h := commands.NewCreateInvoiceCommandHandler(factory, new(MockEventDispatcher), testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateInvoiceCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateInvoiceCommand(t)

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, new(MockEventDispatcher), testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateInvoiceCommand(t)

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, new(MockEventDispatcher), testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_DispatchFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateInvoiceCommand(t)

	repo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("invoice.InvoiceCreated")).
		Return(errors.New("listener blew up")).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, dispatcher, testLogger())
	invoiceID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, invoiceID.Validate())
	dispatcher.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_PublishesCreatedEventForID(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateInvoiceCommand(t)

	repo := new(MockInvoiceRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow := new(MockInvoiceUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	var published invoice.InvoiceCreated
	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("invoice.InvoiceCreated")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(invoice.InvoiceCreated)
		}).Return(nil).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, dispatcher, testLogger())
	invoiceID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, published.InvoiceID.IsEqual(invoiceID))
}
