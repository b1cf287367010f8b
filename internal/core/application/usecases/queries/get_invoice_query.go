// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection data straight
// from the database.
package queries

import (
	"errors"
	"time"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/guard"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New(
	"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
)

// GetInvoiceQuery retrieves the full view of a single invoice, including
// its lines in their original order and the derived totals.
//
// Example:
//
//	query, err := NewGetInvoiceQuery(invoiceID)
//	if err != nil {
//	    return fmt.Errorf("invalid invoice id: %w", err)
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get invoice: %w", err)
//	}
//	fmt.Printf("Invoice %s totals %d cents\n", view.ID, view.TotalPriceInCents)
type GetInvoiceQuery struct { //nolint:recvcheck //using for validation
	invoiceID kernel.InvoiceID

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query for the given invoice.
func NewGetInvoiceQuery(invoiceID kernel.InvoiceID) (GetInvoiceQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}

	return GetInvoiceQuery{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInvoiceQueryIsNotConstructed if validation fails.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// InvoiceID returns the identifier of the requested invoice.
func (q GetInvoiceQuery) InvoiceID() kernel.InvoiceID {
	return q.invoiceID
}

// GetInvoiceQueryResponse is the read model for a single invoice.
type GetInvoiceQueryResponse struct {
	ID                string
	Status            string
	CustomerName      string
	CustomerEmail     string
	Lines             []InvoiceLineView
	TotalPriceInCents int64
	CreatedAt         time.Time
}

// InvoiceLineView is the read model for one invoice line.
type InvoiceLineView struct {
	ProductName       string
	Quantity          int
	UnitPriceInCents  int64
	TotalPriceInCents int64
}
