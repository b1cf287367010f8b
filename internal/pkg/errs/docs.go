// Package errs provides standardized error types for the invoicing application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel,
//     so errors.Is classifies errors without knowing the concrete type
//
// The taxonomy covers value validation (ValueIsInvalid, ValueIsRequired,
// ValueIsOutOfRange), lookup failures (ObjectNotFound), lifecycle violations
// (InvalidState, UnsupportedTransition, StaleAggregate), and notification
// failures (Configuration, Delivery, NotificationFanOut).
package errs
