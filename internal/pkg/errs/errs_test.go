package errs_test

import (
	"errors"
	"testing"

	"invoicing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("invoiceId", "inv_123")

		assert.Equal(t, "invoiceId", err.ParamName)
		assert.Equal(t, "inv_123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: inv_123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("invoiceId", "inv_123", cause)

		assert.Equal(t, "invoiceId", err.ParamName)
		assert.Equal(t, "inv_123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: invoiceId, ID is: inv_123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with non-string ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("lineIndex", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("customerEmail")

		assert.Equal(t, "customerEmail", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: customerEmail", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("customerEmail", cause)

		assert.Equal(t, "customerEmail", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: customerEmail (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -5, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -5 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("amount", -50, 0, 100, cause)

		assert.Equal(t, "amount", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -50 is amount, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerName")

		assert.Equal(t, "customerName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("field missing from payload")
		err := errs.NewValueIsRequiredErrorWithCause("customerName", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerName (cause: field missing from payload)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("invoice can only be sent from draft status")

		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: invoice can only be sent from draft status", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is sent-to-client")
		err := errs.NewInvalidStateErrorWithCause("cannot mark as sent", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid state: cannot mark as sent (cause: status is sent-to-client)", err.Error())
	})
}

func TestUnsupportedTransitionError(t *testing.T) {
	err := errs.NewUnsupportedTransitionError("draft")

	assert.Equal(t, "draft", err.Target)
	assert.Equal(t, "unsupported transition: draft", err.Error())
	assert.Equal(t, errs.ErrUnsupportedTransition, err.Unwrap())
}

func TestConfigurationError(t *testing.T) {
	err := errs.NewConfigurationError("no default notification provider registered")

	assert.Equal(t, "configuration is invalid: no default notification provider registered", err.Error())
	assert.Equal(t, errs.ErrConfiguration, err.Unwrap())
}

func TestDeliveryError(t *testing.T) {
	cause := errors.New("smtp handshake failed")
	err := errs.NewDeliveryError("dummy", cause)

	assert.Equal(t, "dummy", err.Provider)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "notification delivery failed: provider is: dummy (cause: smtp handshake failed)", err.Error())
	assert.Equal(t, errs.ErrDeliveryFailed, err.Unwrap())
}

func TestStaleAggregateError(t *testing.T) {
	err := errs.NewStaleAggregateError("invoice", "inv_123")

	assert.Equal(t, "aggregate is stale: param is: invoice, ID is: inv_123", err.Error())
	assert.Equal(t, errs.ErrStaleAggregate, err.Unwrap())
}

func TestNotificationFanOutError(t *testing.T) {
	t.Run("enumerates failed providers deterministically", func(t *testing.T) {
		err := errs.NewNotificationFanOutError(map[string]error{
			"sendgrid": errors.New("rate limited"),
			"dummy":    errors.New("webhook unreachable"),
		})

		assert.Equal(t,
			"notification fan-out failed: dummy: webhook unreachable; sendgrid: rate limited",
			err.Error())
		assert.Equal(t, errs.ErrNotificationFanOut, err.Unwrap())
	})

	t.Run("retains per-provider causes", func(t *testing.T) {
		cause := errors.New("webhook unreachable")
		err := errs.NewNotificationFanOutError(map[string]error{"dummy": cause})

		assert.Equal(t, cause, err.Failures["dummy"])
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "unsupported transition", errs.ErrUnsupportedTransition.Error())
		assert.Equal(t, "configuration is invalid", errs.ErrConfiguration.Error())
		assert.Equal(t, "notification delivery failed", errs.ErrDeliveryFailed.Error())
		assert.Equal(t, "aggregate is stale", errs.ErrStaleAggregate.Error())
		assert.Equal(t, "notification fan-out failed", errs.ErrNotificationFanOut.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("invoiceId", "inv_123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("customerName"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidStateError("already sent"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewUnsupportedTransitionError("draft"), errs.ErrUnsupportedTransition)
		require.ErrorIs(t, errs.NewConfigurationError("no default provider"), errs.ErrConfiguration)
		require.ErrorIs(t, errs.NewDeliveryError("dummy", errors.New("boom")), errs.ErrDeliveryFailed)
		require.ErrorIs(t, errs.NewStaleAggregateError("invoice", "inv_1"), errs.ErrStaleAggregate)
		require.ErrorIs(t, errs.NewNotificationFanOutError(nil), errs.ErrNotificationFanOut)
	})
}
