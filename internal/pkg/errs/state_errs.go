package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for lifecycle and notification failures.
var (
	ErrInvalidState          = errors.New("invalid state")
	ErrUnsupportedTransition = errors.New("unsupported transition")
	ErrConfiguration         = errors.New("configuration is invalid")
	ErrDeliveryFailed        = errors.New("notification delivery failed")
	ErrStaleAggregate        = errors.New("aggregate is stale")
	ErrNotificationFanOut    = errors.New("notification fan-out failed")
)

// InvalidStateError indicates that an operation was attempted against an
// aggregate whose current state does not permit it.
type InvalidStateError struct {
	Message string
	Cause   error
}

// NewInvalidStateError creates an InvalidStateError without an underlying cause.
func NewInvalidStateError(message string) *InvalidStateError {
	return &InvalidStateError{Message: message}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an
// underlying cause.
func NewInvalidStateErrorWithCause(message string, cause error) *InvalidStateError {
	return &InvalidStateError{Message: message, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, e.Message, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidState, e.Message)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// UnsupportedTransitionError indicates that a target status is not one the
// transition service knows how to execute, even if it was deemed reachable
// upstream.
type UnsupportedTransitionError struct {
	Target string
}

// NewUnsupportedTransitionError creates an UnsupportedTransitionError for the
// given target status.
func NewUnsupportedTransitionError(target string) *UnsupportedTransitionError {
	return &UnsupportedTransitionError{Target: target}
}

func (e *UnsupportedTransitionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedTransition, e.Target)
}

func (e *UnsupportedTransitionError) Unwrap() error {
	return ErrUnsupportedTransition
}

// ConfigurationError indicates that the application is wired without a
// capability an operation requires, e.g. no default notification provider.
type ConfigurationError struct {
	Message string
}

// NewConfigurationError creates a ConfigurationError.
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfiguration, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// DeliveryError indicates that a single notification provider failed to send.
// The original provider failure is preserved in Cause.
type DeliveryError struct {
	Provider string
	Cause    error
}

// NewDeliveryError creates a DeliveryError for the named provider, preserving
// the original cause.
func NewDeliveryError(provider string, cause error) *DeliveryError {
	return &DeliveryError{Provider: provider, Cause: cause}
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: provider is: %s (cause: %s)", ErrDeliveryFailed, e.Provider, sanitize(e.Cause))
}

func (e *DeliveryError) Unwrap() error {
	return ErrDeliveryFailed
}

// StaleAggregateError indicates that a conditional update matched no rows
// because the stored aggregate moved ahead of the in-memory copy.
type StaleAggregateError struct {
	ParamName string
	ID        any
}

// NewStaleAggregateError creates a StaleAggregateError for the given aggregate.
func NewStaleAggregateError(paramName string, id any) *StaleAggregateError {
	return &StaleAggregateError{ParamName: paramName, ID: id}
}

func (e *StaleAggregateError) Error() string {
	return fmt.Sprintf("%s: param is: %s, ID is: %s", ErrStaleAggregate, e.ParamName, e.ID)
}

func (e *StaleAggregateError) Unwrap() error {
	return ErrStaleAggregate
}

// NotificationFanOutError aggregates per-provider failures from a
// send-via-all-providers fan-out. It is raised only after every provider was
// attempted.
type NotificationFanOutError struct {
	// Failures maps provider name to the failure for that provider.
	Failures map[string]error
}

// NewNotificationFanOutError creates a NotificationFanOutError from the
// collected per-provider failures.
func NewNotificationFanOutError(failures map[string]error) *NotificationFanOutError {
	return &NotificationFanOutError{Failures: failures}
}

func (e *NotificationFanOutError) Error() string {
	providers := make([]string, 0, len(e.Failures))
	for name := range e.Failures {
		providers = append(providers, name)
	}
	sort.Strings(providers)

	parts := make([]string, 0, len(providers))
	for _, name := range providers {
		parts = append(parts, fmt.Sprintf("%s: %s", name, sanitize(e.Failures[name])))
	}

	return fmt.Sprintf("%s: %s", ErrNotificationFanOut, strings.Join(parts, "; "))
}

func (e *NotificationFanOutError) Unwrap() error {
	return ErrNotificationFanOut
}
