package invoice

import (
	"errors"
	"fmt"
	"time"

	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through the NewInvoice or RestoreInvoice factory functions.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")
)

// Invoice is the aggregate root for the invoicing lifecycle. It owns an
// ordered collection of lines, a status, and a transient buffer of domain
// events, and treats all of them as one consistency boundary.
//
// Invoice maintains these invariants:
//   - New invoices are always created in draft status
//   - Total price is the sum of all line totals, zero when there are no lines
//   - Status only advances draft -> sending -> sent-to-client; no other edge
//     is reachable through the public API and no self-transition is valid
//   - An invoice restored from storage may carry any valid status but never
//     re-emits the creation event
//
// Lines keep insertion order and duplicates are permitted. Note that AddLine
// carries no status restriction, so lines can in principle still be appended
// after the invoice left draft; this mirrors the system's observed behavior
// and is a candidate for tightening rather than a guarantee.
//
// Invoice is not safe for concurrent use: it assumes one logical owner per
// call, and racing writers are arbitrated at the persistence boundary.
type Invoice struct {
	// id is the unique identifier, generated at creation time
	id kernel.InvoiceID

	// status is the current lifecycle state
	status Status

	// customerName and customerEmail identify the billed customer
	customerName  kernel.CustomerName
	customerEmail kernel.CustomerEmail

	// createdAt is the creation timestamp, immutable after construction
	createdAt time.Time

	// lines is the ordered collection of billable items
	lines []Line

	// events buffers domain events until the owning transaction drains them
	events []DomainEvent

	// isConstructed ensures the invoice was created via a factory function
	isConstructed bool
}

// NewInvoice creates an Invoice in draft status with a freshly generated
// identifier, appends each given line, and buffers an InvoiceCreated event.
//
// Returns a validation error if the customer value objects are zero values.
//
// Example:
//
//	name, _ := kernel.NewCustomerName("Jane Smith")
//	email, _ := kernel.NewCustomerEmail("jane.smith@example.com")
//	inv, err := invoice.NewInvoice(name, email, lines...)
//	if err != nil {
//	    // handle validation error
//	}
func NewInvoice(customerName kernel.CustomerName, customerEmail kernel.CustomerEmail, lines ...Line) (*Invoice, error) {
	inv := &Invoice{
		id:            kernel.NewInvoiceID(),
		status:        StatusDraft,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setCustomerName(customerName),
		inv.setCustomerEmail(customerEmail),
	); err != nil {
		return nil, err
	}

	inv.lines = append(inv.lines, lines...)
	inv.addDomainEvent(InvoiceCreated{
		InvoiceID:     inv.id,
		CustomerEmail: inv.customerEmail,
	})

	return inv, nil
}

// RestoreInvoice reconstructs an Invoice from persisted state. Unlike
// NewInvoice it accepts any valid status and buffers no events, so hydrating
// a stored aggregate never replays its creation. Lines are attached
// afterwards via AddLine by the repository.
func RestoreInvoice(
	id kernel.InvoiceID,
	status Status,
	customerName kernel.CustomerName,
	customerEmail kernel.CustomerEmail,
	createdAt time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setStatus(status),
		inv.setCustomerName(customerName),
		inv.setCustomerEmail(customerEmail),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate ensures the Invoice was created through a factory function.
// Returns ErrInvoiceIsNotConstructed otherwise.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by identity.
func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.InvoiceID {
	return i.id
}

// Status returns the current lifecycle status.
func (i *Invoice) Status() Status {
	return i.status
}

// CustomerName returns the billed customer's name.
func (i *Invoice) CustomerName() kernel.CustomerName {
	return i.customerName
}

// CustomerEmail returns the billed customer's email address.
func (i *Invoice) CustomerEmail() kernel.CustomerEmail {
	return i.customerEmail
}

// CreatedAt returns the creation timestamp.
func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

// Lines returns a copy of the ordered line collection.
func (i *Invoice) Lines() []Line {
	lines := make([]Line, len(i.lines))
	copy(lines, i.lines)
	return lines
}

// AddLine appends a billable item built from the given value objects.
// Insertion order is preserved and duplicates are permitted. There is no
// status restriction (see the type documentation).
func (i *Invoice) AddLine(productName kernel.ProductName, quantity kernel.Quantity, unitPrice kernel.Money) error {
	line, err := NewLine(productName, quantity, unitPrice)
	if err != nil {
		return err
	}

	i.lines = append(i.lines, line)
	return nil
}

// RemoveLine deletes the line at the given zero-based index and re-indexes
// the remaining lines contiguously. Returns an ObjectNotFoundError if the
// index is out of range.
func (i *Invoice) RemoveLine(index int) error {
	if index < 0 || index >= len(i.lines) {
		return errs.NewObjectNotFoundError("invoiceLine", index)
	}

	i.lines = append(i.lines[:index], i.lines[index+1:]...)
	return nil
}

// TotalPrice returns the sum of all line total prices, zero money when the
// invoice has no lines.
func (i *Invoice) TotalPrice() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range i.lines {
		total = total.Add(line.TotalPrice())
	}
	return total
}

// CanBeSent reports whether the invoice may be handed to the notification
// layer: it must be in draft status and contain at least one line.
func (i *Invoice) CanBeSent() bool {
	return i.status.CanBeSent() && len(i.lines) > 0
}

// Send transitions the invoice from draft to sending and buffers an
// InvoiceSent event. Fails with an InvalidStateError if the invoice is not
// in draft status or has no lines; the status is left unchanged on failure.
func (i *Invoice) Send() error {
	if !i.status.CanBeSent() {
		return errs.NewInvalidStateErrorWithCause(
			"invoice can only be sent from draft status",
			fmt.Errorf("status is %s", i.status))
	}

	if len(i.lines) == 0 {
		return errs.NewInvalidStateError("invoice must contain at least one line to be sent")
	}

	i.status = StatusSending
	i.addDomainEvent(InvoiceSent{
		InvoiceID:     i.id,
		CustomerEmail: i.customerEmail,
	})
	return nil
}

// MarkAsSentToClient transitions the invoice from sending to the terminal
// sent-to-client status. No event is buffered. Fails with an
// InvalidStateError unless the invoice is currently sending.
func (i *Invoice) MarkAsSentToClient() error {
	if !i.status.IsSending() {
		return errs.NewInvalidStateErrorWithCause(
			"invoice must be in sending status to mark as sent",
			fmt.Errorf("status is %s", i.status))
	}

	i.status = StatusSentToClient
	return nil
}

// DomainEvents returns a copy of the buffered events in FIFO order.
func (i *Invoice) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(i.events))
	copy(events, i.events)
	return events
}

// ClearDomainEvents drains the event buffer. The caller that dispatched the
// events is responsible for calling this in the same logical transaction.
func (i *Invoice) ClearDomainEvents() {
	i.events = nil
}

func (i *Invoice) addDomainEvent(event DomainEvent) {
	i.events = append(i.events, event)
}

func (i *Invoice) setID(id kernel.InvoiceID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}

func (i *Invoice) setCustomerName(name kernel.CustomerName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	i.customerName = name
	return nil
}

func (i *Invoice) setCustomerEmail(email kernel.CustomerEmail) error {
	if err := email.Validate(); err != nil {
		return err
	}
	i.customerEmail = email
	return nil
}
