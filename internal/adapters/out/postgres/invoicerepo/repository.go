package invoicerepo

import (
	"context"
	"errors"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.InvoiceID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice and its lines to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing invoice to the database and rewrites its lines.
// The status guard only matches rows whose stored status has not progressed
// past the one being written; invoice status moves forward only, so a stale
// writer finds zero rows and gets a StaleAggregateError.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("id = ? AND status <= ?", dto.ID, dto.Status).
		Updates(map[string]any{
			"status":         dto.Status,
			"customer_name":  dto.CustomerName,
			"customer_email": dto.CustomerEmail,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("invoice", dto.ID)
		}
		return errs.NewStaleAggregateError("invoice", dto.ID)
	}

	if err := r.replaceLines(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID, lines ordered by position.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.InvoiceID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an invoice and its lines.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id kernel.InvoiceID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Delete(&InvoiceLineDTO{}, "invoice_id = ?", id.String()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&InvoiceDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice", id.String())
	}

	return nil
}

// replaceLines rewrites the invoice's lines wholesale. Line edits are rare
// and line counts are small, so delete-and-reinsert keeps positions simple.
func (r *GormInvoiceRepository) replaceLines(ctx context.Context, dto InvoiceDTO) error {
	if err := r.db.WithContext(ctx).
		Delete(&InvoiceLineDTO{}, "invoice_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(dto.Lines) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Lines).Error
}
