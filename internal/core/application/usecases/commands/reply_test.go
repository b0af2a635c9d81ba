package commands_test

import (
	"testing"

	"drivethrough/internal/core/application/usecases/commands"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmation(t *testing.T) {
	machine, err := services.NewOrderStateMachine(newCatalog(t))
	require.NoError(t, err)

	apply := func(t *testing.T, current *order.Order, intents ...intent.Intent) (*order.Order, services.Report) {
		t.Helper()
		next, report, err := machine.Apply(current, intent.NewBatch(intents...))
		require.NoError(t, err)
		return next, report
	}

	t.Run("should confirm additions and removals", func(t *testing.T) {
		current, _ := apply(t, order.Empty(), intent.NewAdd("Large Fry", 2))
		_, report := apply(t, current, intent.NewAdd("Big Mac", 2), intent.NewRemove("Large Fry", 1))

		assert.Equal(t, "Added 2 Big Mac. Removed 1 Large Fry.", commands.Confirmation(report))
	})

	t.Run("should confirm substitution", func(t *testing.T) {
		current, _ := apply(t, order.Empty(), intent.NewAdd("Coke", 1))
		_, report := apply(t, current, intent.NewSubstitute("Coke", "Large Fry", 1))

		assert.Equal(t, "Changed 1 Coke to Large Fry.", commands.Confirmation(report))
	})

	t.Run("should confirm set quantity as a delta", func(t *testing.T) {
		current, _ := apply(t, order.Empty(), intent.NewAdd("Coke", 3))
		_, report := apply(t, current, intent.NewSetQuantity("Coke", 1))

		assert.Equal(t, "Removed 2 Coke.", commands.Confirmation(report))
	})

	t.Run("should confirm clear", func(t *testing.T) {
		current, _ := apply(t, order.Empty(), intent.NewAdd("Coke", 1))
		_, report := apply(t, current, intent.NewClear())

		assert.Equal(t, "Cleared your order.", commands.Confirmation(report))
	})

	t.Run("should say unchanged for no-op batch", func(t *testing.T) {
		_, report := apply(t, order.Empty(), intent.NewClear(), intent.NewSetQuantity("Coke", 0))

		assert.Equal(t, "Your order is unchanged.", commands.Confirmation(report))
	})
}

func TestCorrectiveReply(t *testing.T) {
	catalog := newCatalog(t)
	machine, err := services.NewOrderStateMachine(catalog)
	require.NoError(t, err)

	reject := func(t *testing.T, intents ...intent.Intent) error {
		t.Helper()
		_, _, err := machine.Apply(order.Empty(), intent.NewBatch(intents...))
		require.Error(t, err)
		return err
	}

	t.Run("should list the menu for unknown items", func(t *testing.T) {
		err := reject(t, intent.NewAdd("Pizza", 1))

		assert.Equal(t,
			"Item does not exist: Pizza. Available items are: Big Mac, Large Fry, Coke",
			commands.CorrectiveReply(err, catalog))
	})

	t.Run("should name every unknown substitute item", func(t *testing.T) {
		err := reject(t, intent.NewSubstitute("Pizza", "Taco", 1))

		assert.Equal(t,
			"Item does not exist: Pizza, Taco. Available items are: Big Mac, Large Fry, Coke",
			commands.CorrectiveReply(err, catalog))
	})

	t.Run("should explain missing line", func(t *testing.T) {
		err := reject(t, intent.NewRemove("Coke", 1))

		assert.Equal(t, "There is no Coke in your order.", commands.CorrectiveReply(err, catalog))
	})

	t.Run("should ask for a quantity", func(t *testing.T) {
		err := reject(t, intent.NewAdd("Coke", 0))

		assert.Equal(t, "How many Coke would you like?", commands.CorrectiveReply(err, catalog))
	})

	t.Run("should name the limit when a line would grow too large", func(t *testing.T) {
		err := reject(t, intent.NewAdd("Coke", 60), intent.NewAdd("Coke", 40))

		assert.Equal(t, "You can have at most 99 Coke in your order.", commands.CorrectiveReply(err, catalog))
	})

	t.Run("should ask to retry on parse failure", func(t *testing.T) {
		err := intent.NewParseFailure("blah", "no intents")

		assert.Equal(t, "Sorry, I had trouble processing that. Please try again.", commands.CorrectiveReply(err, catalog))
	})
}

func TestIsRejection(t *testing.T) {
	catalog := newCatalog(t)
	machine, err := services.NewOrderStateMachine(catalog)
	require.NoError(t, err)
	_, _, rejected := machine.Apply(order.Empty(), intent.NewBatch(intent.NewAdd("Pizza", 1)))

	assert.True(t, commands.IsRejection(rejected))
	assert.True(t, commands.IsRejection(intent.NewParseFailure("x", "y")))
	assert.False(t, commands.IsRejection(commands.ErrNothingToUndo))
}
