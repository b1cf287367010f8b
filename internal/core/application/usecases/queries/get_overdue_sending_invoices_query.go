package queries

import (
	"errors"
	"time"

	"invoicing/internal/pkg/errs"
	"invoicing/internal/pkg/guard"
)

var ErrGetOverdueSendingInvoicesQueryIsNotConstructed = errors.New(
	"GetOverdueSendingInvoicesQuery must be created via NewGetOverdueSendingInvoicesQuery constructor",
)

// GetOverdueSendingInvoicesQuery retrieves invoices that have stayed in the
// sending state longer than the given threshold. Used by the monitoring job
// to surface notifications whose delivery was never confirmed.
type GetOverdueSendingInvoicesQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetOverdueSendingInvoicesQuery creates a query for invoices stuck in
// sending for longer than olderThan. The threshold must be positive.
func NewGetOverdueSendingInvoicesQuery(olderThan time.Duration) (GetOverdueSendingInvoicesQuery, error) {
	if olderThan <= 0 {
		return GetOverdueSendingInvoicesQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return GetOverdueSendingInvoicesQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueSendingInvoicesQueryIsNotConstructed if validation fails.
func (q GetOverdueSendingInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueSendingInvoicesQueryIsNotConstructed)
}

// OlderThan returns the age threshold.
func (q GetOverdueSendingInvoicesQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetOverdueSendingInvoicesQueryResponse describes one invoice stuck in the
// sending state.
type GetOverdueSendingInvoicesQueryResponse struct {
	ID         string
	SendingFor time.Duration
}
