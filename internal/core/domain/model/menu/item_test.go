package menu_test

import (
	"testing"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item with trimmed name", func(t *testing.T) {
		item, err := menu.NewItem("  Big Mac ", kernel.MustMoney("5.00"), "burger")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Big Mac", item.Name())
		assert.Equal(t, "5.00", item.Price().String())
		assert.Equal(t, "burger", item.Category())
	})

	t.Run("should accept free items", func(t *testing.T) {
		item, err := menu.NewItem("Ketchup", kernel.Zero(), "condiment")

		require.NoError(t, err)
		assert.True(t, item.Price().IsZero())
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := menu.NewItem("   ", kernel.MustMoney("1"), "")

		require.ErrorIs(t, err, menu.ErrItemNameIsRequired)
	})
}

func TestItem_Validate(t *testing.T) {
	var item menu.Item

	assert.Equal(t, menu.ErrItemIsNotConstructed, item.Validate())
}

func TestKey(t *testing.T) {
	t.Run("should ignore case and surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, menu.Key("Big Mac"), menu.Key("  bIG mAC "))
	})

	t.Run("should fold non-ascii letters", func(t *testing.T) {
		assert.Equal(t, menu.Key("CRÈME BRÛLÉE"), menu.Key("crème brûlée"))
	})

	t.Run("should keep inner spelling differences", func(t *testing.T) {
		assert.NotEqual(t, menu.Key("Large Fry"), menu.Key("Large Fries"))
	})
}

func TestItem_IsEqual(t *testing.T) {
	a, _ := menu.NewItem("Coke", kernel.MustMoney("2"), "drink")
	b, _ := menu.NewItem("COKE", kernel.MustMoney("3"), "drink")
	c, _ := menu.NewItem("Sprite", kernel.MustMoney("2"), "drink")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
