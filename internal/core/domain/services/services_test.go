package services_test

import (
	"testing"

	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/core/domain/model/order"
	"drivethrough/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func newMachine(t *testing.T) services.OrderStateMachine {
	t.Helper()
	var items []menu.Item
	for _, spec := range []struct{ name, price, category string }{
		{"Big Mac", "5.00", "burger"},
		{"Large Fry", "3.00", "side"},
		{"Coke", "2.00", "drink"},
	} {
		item, err := menu.NewItem(spec.name, kernel.MustMoney(spec.price), spec.category)
		require.NoError(t, err)
		items = append(items, item)
	}
	catalog, err := menu.NewCatalog(items...)
	require.NoError(t, err)
	machine, err := services.NewOrderStateMachine(catalog)
	require.NoError(t, err)
	return machine
}

func mustApply(t *testing.T, m services.OrderStateMachine, o *order.Order, intents ...intent.Intent) *order.Order {
	t.Helper()
	next, _, err := m.Apply(o, intent.NewBatch(intents...))
	require.NoError(t, err)
	return next
}
