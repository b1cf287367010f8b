// Package invoice contains the invoice aggregate and its owned value objects.
//
// The aggregate root is Invoice, which owns an ordered collection of Lines,
// a lifecycle Status, and a transient buffer of domain events. The lifecycle
// is a strictly forward state machine:
//
//	draft --Send()--> sending --MarkAsSentToClient()--> sent-to-client
//
// No edge returns to a prior state and sent-to-client is terminal. The legal
// transitions live in a single adjacency table (see status.go), consulted by
// both the aggregate and the status transition domain service, so there is
// exactly one rule set.
//
// Domain events (InvoiceCreated, InvoiceSent, NotificationDelivered) are
// immutable facts buffered on the aggregate; the caller that mutated the
// aggregate owns draining and dispatching them.
package invoice
