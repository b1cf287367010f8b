// Package http exposes the invoicing application over REST.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/application/usecases/queries"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/core/ports"
	"invoicing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
)

// Server wires the REST endpoints to command and query handlers.
type Server struct {
	// Command handlers
	createInvoiceHandler commands.CreateInvoiceCommandHandler
	sendInvoiceHandler   commands.SendInvoiceCommandHandler
	updateStatusHandler  commands.UpdateInvoiceStatusCommandHandler
	deleteInvoiceHandler commands.DeleteInvoiceCommandHandler

	// Query handlers
	getInvoiceHandler queries.GetInvoiceQueryHandler

	// Webhook confirmations enter the system as domain events.
	dispatcher ports.EventDispatcher
	logger     *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	sendInvoiceHandler commands.SendInvoiceCommandHandler,
	updateStatusHandler commands.UpdateInvoiceStatusCommandHandler,
	deleteInvoiceHandler commands.DeleteInvoiceCommandHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
	dispatcher ports.EventDispatcher,
	logger *slog.Logger,
) *Server {
	return &Server{
		createInvoiceHandler: createInvoiceHandler,
		sendInvoiceHandler:   sendInvoiceHandler,
		updateStatusHandler:  updateStatusHandler,
		deleteInvoiceHandler: deleteInvoiceHandler,
		getInvoiceHandler:    getInvoiceHandler,
		dispatcher:           dispatcher,
		logger:               logger.With("component", "http"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance, including
// OpenAPI request validation for the documented routes.
func (s *Server) RegisterRoutes(e *echo.Echo) error {
	doc, router, err := loadOpenAPIDoc()
	if err != nil {
		return err
	}

	e.Use(requestValidation(router))

	e.GET("/health", s.GetHealth)
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	})

	api := e.Group("/api/v1")
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices/:invoiceId", s.GetInvoice)
	api.DELETE("/invoices/:invoiceId", s.DeleteInvoice)
	api.POST("/invoices/:invoiceId/send", s.SendInvoice)
	api.PATCH("/invoices/:invoiceId/status", s.UpdateInvoiceStatus)
	api.POST("/webhooks/notification-delivered", s.NotificationDelivered)

	return nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateInvoice handles POST /api/v1/invoices - creates a new draft invoice.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var request NewInvoiceRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerName, err := kernel.NewCustomerName(request.CustomerName)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	customerEmail, err := kernel.NewCustomerEmail(string(request.CustomerEmail))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	lines := make([]invoice.Line, 0, len(request.Lines))
	for _, lineRequest := range request.Lines {
		line, lineErr := toDomainLine(lineRequest)
		if lineErr != nil {
			return s.errorResponse(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateInvoiceCommand(customerName, customerEmail, lines)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	invoiceID, err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, InvoiceCreatedResponse{ID: invoiceID.String()})
}

// GetInvoice handles GET /api/v1/invoices/:invoiceId.
func (s *Server) GetInvoice(ctx echo.Context) error {
	invoiceID, err := kernel.InvoiceIDFromString(ctx.Param("invoiceId"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetInvoiceQuery(invoiceID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	view, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := InvoiceResponse{
		ID:                view.ID,
		Status:            view.Status,
		CustomerName:      view.CustomerName,
		CustomerEmail:     types.Email(view.CustomerEmail),
		Lines:             make([]InvoiceLineResponse, 0, len(view.Lines)),
		TotalPriceInCents: view.TotalPriceInCents,
		CreatedAt:         view.CreatedAt,
	}
	for _, line := range view.Lines {
		response.Lines = append(response.Lines, InvoiceLineResponse{
			ProductName:       line.ProductName,
			Quantity:          line.Quantity,
			UnitPriceInCents:  line.UnitPriceInCents,
			TotalPriceInCents: line.TotalPriceInCents,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SendInvoice handles POST /api/v1/invoices/:invoiceId/send.
func (s *Server) SendInvoice(ctx echo.Context) error {
	invoiceID, err := kernel.InvoiceIDFromString(ctx.Param("invoiceId"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewSendInvoiceCommand(invoiceID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.sendInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// UpdateInvoiceStatus handles PATCH /api/v1/invoices/:invoiceId/status.
func (s *Server) UpdateInvoiceStatus(ctx echo.Context) error {
	invoiceID, err := kernel.InvoiceIDFromString(ctx.Param("invoiceId"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var request StatusUpdateRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateInvoiceStatusCommand(invoiceID, request.Status)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteInvoice handles DELETE /api/v1/invoices/:invoiceId.
func (s *Server) DeleteInvoice(ctx echo.Context) error {
	invoiceID, err := kernel.InvoiceIDFromString(ctx.Param("invoiceId"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteInvoiceCommand(invoiceID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.deleteInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NotificationDelivered handles POST /api/v1/webhooks/notification-delivered.
// Provider confirmations enter the system as NotificationDelivered events;
// the subscribed listener decides whether the confirmation still applies, so
// late or duplicate callbacks are accepted here and dropped there.
func (s *Server) NotificationDelivered(ctx echo.Context) error {
	var request DeliveryConfirmationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	invoiceID, err := kernel.InvoiceIDFromString(request.InvoiceID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if request.Provider == "" {
		return s.errorResponse(ctx, errs.NewValueIsRequiredError("provider"))
	}

	event := invoice.NotificationDelivered{
		InvoiceID:    invoiceID,
		ProviderName: request.Provider,
		DeliveredAt:  time.Now().UTC(),
	}

	if err = s.dispatcher.Dispatch(ctx.Request().Context(), event); err != nil {
		s.logger.Error("delivery confirmation processing failed",
			"invoice_id", invoiceID, "provider", request.Provider, "error", err)
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

func toDomainLine(request NewInvoiceLineRequest) (invoice.Line, error) {
	productName, err := kernel.NewProductName(request.ProductName)
	if err != nil {
		return invoice.Line{}, err
	}

	quantity, err := kernel.NewQuantity(request.Quantity)
	if err != nil {
		return invoice.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(request.UnitPriceInCents)
	if err != nil {
		return invoice.Line{}, err
	}

	return invoice.NewLine(productName, quantity, unitPrice)
}

// errorResponse maps application errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrUnsupportedTransition),
		errors.Is(err, errs.ErrStaleAggregate):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
