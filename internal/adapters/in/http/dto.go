package http

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// NewInvoiceRequest is the body of POST /api/v1/invoices.
type NewInvoiceRequest struct {
	CustomerName  string                  `json:"customer_name"`
	CustomerEmail types.Email             `json:"customer_email"`
	Lines         []NewInvoiceLineRequest `json:"lines,omitempty"`
}

// NewInvoiceLineRequest is one line in an invoice creation request.
type NewInvoiceLineRequest struct {
	ProductName      string `json:"product_name"`
	Quantity         int    `json:"quantity"`
	UnitPriceInCents int64  `json:"unit_price_in_cents"`
}

// InvoiceCreatedResponse reports the generated id of a new invoice.
type InvoiceCreatedResponse struct {
	ID string `json:"id"`
}

// InvoiceResponse is the full invoice view returned by GET.
type InvoiceResponse struct {
	ID                string                `json:"id"`
	Status            string                `json:"status"`
	CustomerName      string                `json:"customer_name"`
	CustomerEmail     types.Email           `json:"customer_email"`
	Lines             []InvoiceLineResponse `json:"lines"`
	TotalPriceInCents int64                 `json:"total_price_in_cents"`
	CreatedAt         time.Time             `json:"created_at"`
}

// InvoiceLineResponse is one line of an invoice view.
type InvoiceLineResponse struct {
	ProductName       string `json:"product_name"`
	Quantity          int    `json:"quantity"`
	UnitPriceInCents  int64  `json:"unit_price_in_cents"`
	TotalPriceInCents int64  `json:"total_price_in_cents"`
}

// StatusUpdateRequest is the body of PATCH /api/v1/invoices/{id}/status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// DeliveryConfirmationRequest is the body a notification provider posts to
// the delivery webhook.
type DeliveryConfirmationRequest struct {
	InvoiceID string `json:"invoice_id"`
	Provider  string `json:"provider"`
}

// Error is the uniform error body for all failure responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
