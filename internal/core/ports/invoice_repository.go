package ports

import (
	"context"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
// Provides methods for storing, retrieving, and removing invoice entities
// together with their lines.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	// The invoice must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	// Fails with StaleAggregateError when the stored invoice has already
	// progressed past the status the caller loaded.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	// Returns the complete invoice with its lines in their original order.
	Get(ctx context.Context, id kernel.InvoiceID) (*invoice.Invoice, error)

	// Delete removes an invoice aggregate and its lines from storage.
	Delete(ctx context.Context, id kernel.InvoiceID) error
}
