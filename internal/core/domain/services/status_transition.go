package services

import (
	"fmt"

	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/pkg/errs"
)

// StatusTransitionService is a stateless policy wrapping the invoice state
// machine for callers that receive a target status as untyped input (for
// example an external status-update request) rather than calling the
// aggregate's Send or MarkAsSentToClient directly.
//
// The service consults the same adjacency table the aggregate uses, so a
// status change arriving as a free-form string shares exactly the legality
// checks of the typed paths - there is no duplicated rule set.
type StatusTransitionService struct{}

// NewStatusTransitionService creates the stateless transition policy.
func NewStatusTransitionService() StatusTransitionService {
	return StatusTransitionService{}
}

// IsValidTransition reports whether the edge from -> to exists in the state
// graph. Only (draft, sending) and (sending, sent-to-client) are legal;
// every self-transition and reverse edge is not.
func (StatusTransitionService) IsValidTransition(from, to invoice.Status) bool {
	return from.CanTransitionTo(to)
}

// TransitionTo moves the invoice to the target status.
//
// Fails with an InvalidStateError if the edge from the invoice's current
// status to the target is not in the state graph. A reachable target is then
// dispatched to the aggregate's own operation: Send for sending,
// MarkAsSentToClient for sent-to-client. Any other target fails with an
// UnsupportedTransitionError even if it was somehow deemed reachable
// upstream.
func (s StatusTransitionService) TransitionTo(inv *invoice.Invoice, target invoice.Status) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	if !s.IsValidTransition(inv.Status(), target) {
		return errs.NewInvalidStateErrorWithCause(
			"status transition is not allowed",
			fmt.Errorf("cannot transition from %s to %s", inv.Status(), target))
	}

	switch target {
	case invoice.StatusSending:
		return inv.Send()
	case invoice.StatusSentToClient:
		return inv.MarkAsSentToClient()
	default:
		return errs.NewUnsupportedTransitionError(target.String())
	}
}

// PossibleTransitions returns the statuses reachable from the given status
// in one step. The terminal sent-to-client status has none.
func (StatusTransitionService) PossibleTransitions(status invoice.Status) []invoice.Status {
	return status.PossibleTransitions()
}

// CanBeChanged reports whether the status has at least one outgoing
// transition, i.e. is not terminal.
func (s StatusTransitionService) CanBeChanged(status invoice.Status) bool {
	return len(s.PossibleTransitions(status)) > 0
}
