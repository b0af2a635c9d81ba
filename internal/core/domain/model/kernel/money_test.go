package kernel_test

import (
	"testing"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal amounts", func(t *testing.T) {
		m, err := kernel.MoneyFromString("2.5")

		require.NoError(t, err)
		assert.Equal(t, "2.50", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-0.01")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is negative")
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("five dollars")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add and multiply exactly", func(t *testing.T) {
		// 0.1 + 0.2 is the classic binary floating point trap
		sum := kernel.MustMoney("0.10").Add(kernel.MustMoney("0.20"))

		assert.True(t, sum.Equal(kernel.MustMoney("0.30")))
		assert.Equal(t, "0.90", kernel.MustMoney("0.30").Times(3).String())
	})

	t.Run("should treat non-positive quantities as zero", func(t *testing.T) {
		assert.True(t, kernel.MustMoney("5").Times(0).IsZero())
		assert.True(t, kernel.MustMoney("5").Times(-1).IsZero())
	})

	t.Run("should compare numerically", func(t *testing.T) {
		assert.True(t, kernel.MustMoney("5").Equal(kernel.MustMoney("5.000")))
		assert.False(t, kernel.MustMoney("5").Equal(kernel.MustMoney("5.01")))
	})
}

func TestMoney_ZeroValue(t *testing.T) {
	var m kernel.Money

	assert.True(t, m.IsZero())
	assert.True(t, m.Equal(kernel.Zero()))
	assert.Equal(t, "0.00", m.String())
}

func TestNewMoney(t *testing.T) {
	m, err := kernel.NewMoney(decimal.RequireFromString("3.75"))

	require.NoError(t, err)
	assert.True(t, m.Decimal().Equal(decimal.RequireFromString("3.75")))

	_, err = kernel.NewMoney(decimal.NewFromInt(-1))
	require.Error(t, err)
}

func TestMustMoney_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { kernel.MustMoney("-3") })
}
