package notify

import (
	"fmt"

	"invoicing/internal/core/domain/model/kernel"
)

// Canonical notification template used when the caller supplies no subject
// or body of its own.
const defaultSubject = "Your Invoice is Ready"

func defaultBody(invoiceID kernel.InvoiceID) string {
	return fmt.Sprintf(
		"Dear Customer,\n\nYour invoice #%s has been prepared and is ready for review.\n\n"+
			"Thank you for your business!\n\nBest regards,\nInvoice Management System",
		invoiceID)
}
