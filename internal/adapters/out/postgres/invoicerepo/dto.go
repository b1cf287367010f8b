// Package invoicerepo provides data transfer objects and mapping functions for invoice persistence.
// This package implements the repository pattern for the invoice domain aggregate, handling
// the conversion between domain entities and database representations.
package invoicerepo

import (
	"time"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
)

// InvoiceDTO represents the database structure for persisting invoice aggregates.
// Lines live in their own table; the DTO carries them for reads and inserts.
type InvoiceDTO struct {
	ID            string `gorm:"type:varchar(64);primaryKey"`
	Status        int    `gorm:"index"`
	CustomerName  string `gorm:"type:varchar(255)"`
	CustomerEmail string `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	Lines         []InvoiceLineDTO `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for invoice entities.
// Overrides GORM's default naming convention to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// InvoiceLineDTO represents one billable line of an invoice.
// The position column preserves the order lines were added in.
type InvoiceLineDTO struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	InvoiceID        string `gorm:"type:varchar(64);index"`
	Position         int
	ProductName      string `gorm:"type:varchar(255)"`
	Quantity         int
	UnitPriceInCents int64
}

// TableName specifies the database table name for invoice lines.
func (InvoiceLineDTO) TableName() string {
	return "invoice_lines"
}

// fromDomain converts an invoice domain aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]InvoiceLineDTO, 0, len(lines))
	for position, line := range lines {
		lineDTOs = append(lineDTOs, InvoiceLineDTO{
			InvoiceID:        aggregate.ID().String(),
			Position:         position,
			ProductName:      line.ProductName().Value(),
			Quantity:         line.Quantity().Value(),
			UnitPriceInCents: line.UnitPrice().AmountInCents(),
		})
	}

	return InvoiceDTO{
		ID:            aggregate.ID().String(),
		Status:        int(aggregate.Status()),
		CustomerName:  aggregate.CustomerName().Value(),
		CustomerEmail: aggregate.CustomerEmail().Value(),
		CreatedAt:     aggregate.CreatedAt(),
		Lines:         lineDTOs,
	}
}

// toDomain converts a database DTO to an invoice domain aggregate.
// Reconstructs the aggregate via RestoreInvoice and reattaches the lines in
// their stored position order.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.InvoiceIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	customerName, err := kernel.NewCustomerName(dto.CustomerName)
	if err != nil {
		return nil, err
	}

	customerEmail, err := kernel.NewCustomerEmail(dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	aggregate, err := invoice.RestoreInvoice(
		id, invoice.Status(dto.Status), customerName, customerEmail, dto.CreatedAt.UTC())
	if err != nil {
		return nil, err
	}

	for _, lineDTO := range dto.Lines {
		productName, lineErr := kernel.NewProductName(lineDTO.ProductName)
		if lineErr != nil {
			return nil, lineErr
		}

		quantity, lineErr := kernel.NewQuantity(lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}

		unitPrice, lineErr := kernel.NewMoney(lineDTO.UnitPriceInCents)
		if lineErr != nil {
			return nil, lineErr
		}

		if lineErr = aggregate.AddLine(productName, quantity, unitPrice); lineErr != nil {
			return nil, lineErr
		}
	}

	return aggregate, nil
}
