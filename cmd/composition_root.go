package cmd

import (
	"log/slog"
	"time"

	httpadapter "invoicing/internal/adapters/in/http"
	"invoicing/internal/adapters/out/events"
	"invoicing/internal/adapters/out/notify"
	"invoicing/internal/adapters/out/postgres"
	"invoicing/internal/core/application/listeners"
	"invoicing/internal/core/application/notifications"
	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/application/usecases/queries"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/services"
	"invoicing/internal/core/ports"
	"invoicing/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	dispatcher   *events.InProcessDispatcher
	orchestrator *notifications.Orchestrator
	logger       *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	dispatcher, err := events.NewInProcessDispatcher(logger)
	if err != nil {
		return nil, err
	}

	dummyProvider, err := notify.NewDummyProvider(configs.NotificationWebhookURL, logger)
	if err != nil {
		return nil, err
	}
	logProvider, err := notify.NewLogProvider(logger)
	if err != nil {
		return nil, err
	}

	orchestrator, err := notifications.NewOrchestrator(
		[]ports.NotificationProvider{dummyProvider, logProvider},
		configs.DefaultNotificationProvider,
		logger,
	)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher:   dispatcher,
		orchestrator: orchestrator,
		logger:       logger,
	}
	root.subscribeListeners()
	return root, nil
}

// subscribeListeners wires the domain event flow: invoice sent triggers the
// default notification, delivery confirmations finalize the invoice.
func (c *CompositionRoot) subscribeListeners() {
	c.dispatcher.Subscribe(invoice.EventNameInvoiceCreated,
		listeners.NewInvoiceCreatedListener(c.logger))
	c.dispatcher.Subscribe(invoice.EventNameInvoiceSent,
		listeners.NewInvoiceSentListener(c.orchestrator, c.logger))
	c.dispatcher.Subscribe(invoice.EventNameNotificationDelivered,
		listeners.NewNotificationDeliveredListener(c.CreateMarkInvoiceAsSentCommandHandler(), c.logger))
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.invoiceUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateSendInvoiceCommandHandler() commands.SendInvoiceCommandHandler {
	return commands.NewSendInvoiceCommandHandler(c.invoiceUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateUpdateInvoiceStatusCommandHandler() commands.UpdateInvoiceStatusCommandHandler {
	return commands.NewUpdateInvoiceStatusCommandHandler(c.invoiceUoWFactory(),
		services.NewStatusTransitionService(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateMarkInvoiceAsSentCommandHandler() commands.MarkInvoiceAsSentCommandHandler {
	return commands.NewMarkInvoiceAsSentCommandHandler(c.invoiceUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateDeleteInvoiceCommandHandler() commands.DeleteInvoiceCommandHandler {
	return commands.NewDeleteInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueSendingInvoicesQueryHandler() queries.GetOverdueSendingInvoicesQueryHandler {
	return queries.NewGetOverdueSendingInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateInvoiceCommandHandler(),
		c.CreateSendInvoiceCommandHandler(),
		c.CreateUpdateInvoiceStatusCommandHandler(),
		c.CreateDeleteInvoiceCommandHandler(),
		c.CreateGetInvoiceQueryHandler(),
		c.dispatcher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager(sendingThreshold time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueSendingInvoicesQueryHandler(), sendingThreshold, c.logger)
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
