package menu_test

import (
	"testing"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, name, price, category string) menu.Item {
	t.Helper()
	item, err := menu.NewItem(name, kernel.MustMoney(price), category)
	require.NoError(t, err)
	return item
}

func defaultItems(t *testing.T) []menu.Item {
	t.Helper()
	return []menu.Item{
		newItem(t, "Big Mac", "5.00", "burger"),
		newItem(t, "Large Fry", "3.00", "side"),
		newItem(t, "Coke", "2.00", "drink"),
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("should keep load order", func(t *testing.T) {
		catalog, err := menu.NewCatalog(defaultItems(t)...)

		require.NoError(t, err)
		require.NoError(t, catalog.Validate())
		assert.Equal(t, 3, catalog.Len())
		assert.Equal(t, []string{"Big Mac", "Large Fry", "Coke"}, catalog.Names())
	})

	t.Run("should fail without items", func(t *testing.T) {
		catalog, err := menu.NewCatalog()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, catalog)
	})

	t.Run("should fail on case-insensitive duplicates", func(t *testing.T) {
		_, err := menu.NewCatalog(
			newItem(t, "Coke", "2.00", "drink"),
			newItem(t, "coke", "2.50", "drink"),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"coke" is listed more than once`)
	})

	t.Run("should fail on unconstructed items", func(t *testing.T) {
		_, err := menu.NewCatalog(newItem(t, "Coke", "2.00", "drink"), menu.Item{})

		require.ErrorIs(t, err, menu.ErrItemIsNotConstructed)
	})
}

func TestCatalog_Lookup(t *testing.T) {
	catalog, err := menu.NewCatalog(defaultItems(t)...)
	require.NoError(t, err)

	t.Run("should find items ignoring case", func(t *testing.T) {
		item, err := catalog.Lookup("big MAC")

		require.NoError(t, err)
		assert.Equal(t, "Big Mac", item.Name())
		assert.True(t, catalog.Contains(" large fry "))
	})

	t.Run("should not correct spelling", func(t *testing.T) {
		_, err := catalog.Lookup("Large Fries")

		var unknown *menu.UnknownItemError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Large Fries", unknown.ItemName)
		require.ErrorIs(t, err, menu.ErrUnknownItem)
		assert.False(t, catalog.Contains("Whopper"))
	})
}

func TestCatalog_AllItemsIsACopy(t *testing.T) {
	catalog, err := menu.NewCatalog(defaultItems(t)...)
	require.NoError(t, err)

	items := catalog.AllItems()
	items[0] = newItem(t, "Whopper", "6.00", "burger")

	assert.Equal(t, "Big Mac", catalog.AllItems()[0].Name())
	assert.False(t, catalog.Contains("Whopper"))
}

func TestCatalog_Validate(t *testing.T) {
	var nilCatalog *menu.Catalog
	var zero menu.Catalog

	assert.Equal(t, menu.ErrCatalogIsNotConstructed, nilCatalog.Validate())
	assert.Equal(t, menu.ErrCatalogIsNotConstructed, zero.Validate())
}
