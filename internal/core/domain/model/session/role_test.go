package session_test

import (
	"testing"

	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("should parse known roles in any case", func(t *testing.T) {
		r, err := session.ParseRole(" Customer ")
		require.NoError(t, err)
		assert.Equal(t, session.Customer, r)

		r, err = session.ParseRole("ASSISTANT")
		require.NoError(t, err)
		assert.Equal(t, session.Assistant, r)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := session.ParseRole("manager")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should render unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", session.Role(7).String())
		assert.Equal(t, "customer", session.Customer.String())
	})
}

func TestOutcome_Validate(t *testing.T) {
	assert.NoError(t, session.CheckedOut.Validate())
	assert.NoError(t, session.Abandoned.Validate())
	assert.ErrorIs(t, session.Outcome("lost").Validate(), errs.ErrValueIsInvalid)
}
