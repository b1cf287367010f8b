package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.InvoiceID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id kernel.InvoiceID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInvoiceUoW struct{ mock.Mock }

func (m *MockInvoiceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

type MockEventDispatcher struct{ mock.Mock }

func (m *MockEventDispatcher) Subscribe(eventName string, handler ports.EventHandler) {
	m.Called(eventName, handler)
}

func (m *MockEventDispatcher) Dispatch(ctx context.Context, event invoice.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func draftInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()

	name, err := kernel.NewCustomerName("Jane Smith")
	require.NoError(t, err)
	email, err := kernel.NewCustomerEmail("jane.smith@example.com")
	require.NoError(t, err)

	product, err := kernel.NewProductName("Consulting")
	require.NoError(t, err)
	qty, err := kernel.NewQuantity(2)
	require.NoError(t, err)
	price, err := kernel.NewMoney(10000)
	require.NoError(t, err)
	line, err := invoice.NewLine(product, qty, price)
	require.NoError(t, err)

	aggregate, err := invoice.NewInvoice(name, email, line)
	require.NoError(t, err)
	aggregate.ClearDomainEvents()

	return aggregate
}

func sendingInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()

	aggregate := draftInvoice(t)
	require.NoError(t, aggregate.Send())
	aggregate.ClearDomainEvents()

	return aggregate
}
