package errs_test

import (
	"errors"
	"testing"

	"drivethrough/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("session", "42")

		assert.Equal(t, "session", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: session 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("session expired")
		err := errs.NewObjectNotFoundErrorWithCause("session", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: session 42 (cause: session expired)", err.Error())
	})

	t.Run("non string identifiers are formatted with %v", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("history entry", 7)

		assert.Equal(t, "object not found: history entry 7", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("price")

		assert.Equal(t, "price", err.ParamName)
		assert.Equal(t, "value is invalid: price", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("price", errors.New("-1 is negative"))

		assert.Equal(t, "value is invalid: price (cause: -1 is negative)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 99, err.Max)
		assert.Equal(t, "value is out of range: quantity is 0, min value is 1, max value is 99", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -2, 1, 99, errors.New("remove"))

		assert.Equal(t,
			"value is out of range: quantity is -2, min value is 1, max value is 99 (cause: remove)",
			err.Error())
	})

	t.Run("string values are kept on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "Big\nMac", 1, 64)

		assert.Contains(t, err.Error(), "Big Mac")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("item name")

		assert.Equal(t, "value is required: item name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("intent batch", errors.New("no intents"))

		assert.Equal(t, "value is required: intent batch (cause: no intents)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("session", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("price"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 2), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
}
