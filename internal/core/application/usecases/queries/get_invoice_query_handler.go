package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetInvoiceQueryHandler reads the full invoice view from the database.
// Lines are returned in the order they were added to the invoice.
//
// Example:
//
//	handler := NewGetInvoiceQueryHandler(db)
//	query, _ := NewGetInvoiceQuery(invoiceID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get invoice: %v", err)
//	    return err
//	}
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceQueryHandler creates a handler for single-invoice queries.
// Requires a GORM database connection for query execution.
func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

// Handle executes the query and assembles the invoice view.
// Returns an ObjectNotFoundError when no invoice exists under the id.
func (h GetInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceQuery,
) (GetInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	var response GetInvoiceQueryResponse

	headerRow := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			customer_name,
			customer_email,
			created_at
		FROM invoices
		WHERE id = ?
	`, query.InvoiceID().String()).Row()

	var status int
	var createdAt time.Time
	err := headerRow.Scan(
		&response.ID,
		&status,
		&response.CustomerName,
		&response.CustomerEmail,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetInvoiceQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"invoiceID", query.InvoiceID(), err)
		}
		return GetInvoiceQueryResponse{}, err
	}
	response.Status = invoice.Status(status).String()
	response.CreatedAt = createdAt.UTC()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			quantity,
			unit_price_in_cents
		FROM invoice_lines
		WHERE invoice_id = ?
		ORDER BY position
	`, query.InvoiceID().String()).Rows()
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}
	defer rows.Close()

	response.Lines = make([]InvoiceLineView, 0)
	for rows.Next() {
		var line InvoiceLineView

		if err = rows.Scan(
			&line.ProductName,
			&line.Quantity,
			&line.UnitPriceInCents,
		); err != nil {
			return GetInvoiceQueryResponse{}, err
		}

		line.TotalPriceInCents = line.UnitPriceInCents * int64(line.Quantity)
		response.TotalPriceInCents += line.TotalPriceInCents
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	return response, nil
}
