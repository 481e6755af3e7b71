package cart_test

import (
	"testing"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return price
}

func mustItem(t *testing.T, amount int64) cart.CartItem {
	t.Helper()
	item, err := cart.NewCartItem(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita", 1, "", nil, mustPrice(t, amount))
	require.NoError(t, err)
	return item
}

func TestNewCart(t *testing.T) {
	t.Run("should create an empty cart with zero total", func(t *testing.T) {
		testCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, testCart.Validate())
		assert.True(t, testCart.IsEmpty())
		assert.Equal(t, 0, testCart.ItemCount())
		assert.True(t, testCart.TotalPrice().IsZero())
		assert.Equal(t, int64(0), testCart.Version())
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := cart.NewCart(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})
}

func TestCart_Validate(t *testing.T) {
	t.Run("zero-value cart is not constructed", func(t *testing.T) {
		var testCart cart.Cart
		require.ErrorIs(t, testCart.Validate(), cart.ErrCartIsNotConstructed)
	})

	t.Run("nil cart is not constructed", func(t *testing.T) {
		var testCart *cart.Cart
		require.ErrorIs(t, testCart.Validate(), cart.ErrCartIsNotConstructed)
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("total equals the sum of item totals", func(t *testing.T) {
		testCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, testCart.AddItem(mustItem(t, 2000)))
		require.NoError(t, testCart.AddItem(mustItem(t, 1500)))

		assert.Equal(t, 2, testCart.ItemCount())
		assert.Equal(t, int64(3500), testCart.TotalPrice().Amount())
	})

	t.Run("should reject a zero-value item", func(t *testing.T) {
		testCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		err = testCart.AddItem(cart.CartItem{})

		require.ErrorIs(t, err, cart.ErrCartItemIsNotConstructed)
		assert.True(t, testCart.IsEmpty())
	})
}

func TestCart_Clear(t *testing.T) {
	t.Run("should empty the cart and reset the total", func(t *testing.T) {
		testCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, testCart.AddItem(mustItem(t, 2000)))

		testCart.Clear()

		assert.True(t, testCart.IsEmpty())
		assert.Equal(t, 0, testCart.ItemCount())
		assert.True(t, testCart.TotalPrice().IsZero())
	})
}

func TestRestoreCart(t *testing.T) {
	t.Run("should restore items, total, and version", func(t *testing.T) {
		items := []cart.CartItem{mustItem(t, 2000), mustItem(t, 1500)}

		restored, err := cart.RestoreCart(
			kernel.NewUUID(), kernel.NewUUID(), items, mustPrice(t, 3500), 4)

		require.NoError(t, err)
		assert.Equal(t, 2, restored.ItemCount())
		assert.Equal(t, int64(3500), restored.TotalPrice().Amount())
		assert.Equal(t, int64(4), restored.Version())
	})

	t.Run("should reject a stored total that does not match the item sum", func(t *testing.T) {
		items := []cart.CartItem{mustItem(t, 2000)}

		_, err := cart.RestoreCart(
			kernel.NewUUID(), kernel.NewUUID(), items, mustPrice(t, 9999), 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a negative version", func(t *testing.T) {
		_, err := cart.RestoreCart(
			kernel.NewUUID(), kernel.NewUUID(), nil, kernel.ZeroPrice(), -1)

		require.Error(t, err)
	})
}

func TestNewCartItem(t *testing.T) {
	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := cart.NewCartItem(
				kernel.NewUUID(), kernel.NewUUID(), "Margherita", quantity, "", nil, mustPrice(t, 100))
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject an empty food name", func(t *testing.T) {
		_, err := cart.NewCartItem(
			kernel.NewUUID(), kernel.NewUUID(), "", 1, "", nil, mustPrice(t, 100))
		require.ErrorIs(t, err, cart.ErrFoodNameIsRequired)
	})

	t.Run("ingredient set is copied, not shared", func(t *testing.T) {
		ingredient, err := cart.NewIngredient(kernel.NewUUID(), "Cheese")
		require.NoError(t, err)
		source := []cart.Ingredient{ingredient}

		item, err := cart.NewCartItem(
			kernel.NewUUID(), kernel.NewUUID(), "Margherita", 1, "", source, mustPrice(t, 100))
		require.NoError(t, err)

		source[0] = cart.Ingredient{}

		got := item.Ingredients()
		require.Len(t, got, 1)
		assert.Equal(t, "Cheese", got[0].Name())
	})
}
