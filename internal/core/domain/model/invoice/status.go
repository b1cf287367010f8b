package invoice

import (
	"fmt"

	"invoicing/internal/pkg/errs"
)

// Status represents the lifecycle state of an invoice.
// Ordering is directional, not numeric: statuses only ever advance
// draft -> sending -> sent-to-client.
//
// Status is a value object that validates itself and exposes the legal
// state graph as data, keeping the transition table auditable in one place.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status of every newly created invoice.
	// Draft invoices may gain and lose lines and are the only invoices
	// that can be sent.
	StatusDraft

	// StatusSending indicates the invoice was handed to the notification
	// layer and a delivery confirmation is awaited.
	StatusSending

	// StatusSentToClient indicates delivery to the client was confirmed.
	// This is a terminal state with no further transitions.
	StatusSentToClient
)

// Wire representations of the statuses, also used for persistence and the
// HTTP surface.
const (
	statusDraftString        = "draft"
	statusSendingString      = "sending"
	statusSentToClientString = "sent-to-client"
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "unknown",
		StatusDraft:        statusDraftString,
		StatusSending:      statusSendingString,
		StatusSentToClient: statusSentToClientString,
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:        statusDraftString,
		StatusSending:      statusSendingString,
		StatusSentToClient: statusSentToClientString,
	}
}

// getStatusTransitions returns the legal state graph as an adjacency table
// from status to allowed target statuses. This single structure is the
// canonical rule set for every transition check in the system.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusDraft:        {StatusSending},
		StatusSending:      {StatusSentToClient},
		StatusSentToClient: {},
	}
}

// StatusFromString parses a wire representation ("draft", "sending",
// "sent-to-client") into a Status. Unknown strings fail with a validation
// error before any transition logic runs.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are draft, sending, and sent-to-client.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsDraft reports whether the status is draft.
func (s Status) IsDraft() bool {
	return s == StatusDraft
}

// IsSending reports whether the status is sending.
func (s Status) IsSending() bool {
	return s == StatusSending
}

// IsSentToClient reports whether the status is sent-to-client.
func (s Status) IsSentToClient() bool {
	return s == StatusSentToClient
}

// CanBeSent reports whether an invoice in this status may be handed to the
// notification layer. Only draft invoices qualify.
func (s Status) CanBeSent() bool {
	return s.IsDraft()
}

// PossibleTransitions returns the statuses reachable from s in one step,
// per the adjacency table. The terminal status returns an empty slice.
func (s Status) PossibleTransitions() []Status {
	return getStatusTransitions()[s]
}

// CanTransitionTo reports whether the edge s -> target exists in the state
// graph. Self-transitions and reverse edges are never legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
