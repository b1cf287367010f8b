package queries

import (
	"context"
	"time"

	"invoicing/internal/core/domain/model/invoice"

	"gorm.io/gorm"
)

// GetOverdueSendingInvoicesQueryHandler finds invoices whose delivery
// confirmation is overdue. Age is measured from the invoice's creation time,
// the only timestamp the aggregate carries.
type GetOverdueSendingInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueSendingInvoicesQueryHandler creates a handler for overdue-sending queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueSendingInvoicesQueryHandler(db *gorm.DB) GetOverdueSendingInvoicesQueryHandler {
	return GetOverdueSendingInvoicesQueryHandler{db: db}
}

// Handle executes the query and reports each stuck invoice with its age.
// Results are sorted oldest first.
func (h GetOverdueSendingInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueSendingInvoicesQuery,
) ([]GetOverdueSendingInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-query.OlderThan())

	invoices := make([]GetOverdueSendingInvoicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_at
		FROM invoices
		WHERE status = ?
		AND created_at < ?
		ORDER BY created_at
	`, int(invoice.StatusSending), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueSendingInvoicesQueryResponse
		var createdAt time.Time

		if err = rows.Scan(&resp.ID, &createdAt); err != nil {
			return nil, err
		}

		resp.SendingFor = now.Sub(createdAt.UTC())
		invoices = append(invoices, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
