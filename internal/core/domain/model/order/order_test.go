package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
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

func buildCart(t *testing.T, userID kernel.UUID, lines ...int64) *cart.Cart {
	t.Helper()

	testCart, err := cart.NewCart(kernel.NewUUID(), userID)
	require.NoError(t, err)

	for i, amount := range lines {
		ingredient, ingErr := cart.NewIngredient(kernel.NewUUID(), "Cheese")
		require.NoError(t, ingErr)

		item, itemErr := cart.NewCartItem(
			kernel.NewUUID(),
			kernel.NewUUID(),
			"Margherita",
			i+1,
			"extra crispy",
			[]cart.Ingredient{ingredient},
			mustPrice(t, amount),
		)
		require.NoError(t, itemErr)
		require.NoError(t, testCart.AddItem(item))
	}

	return testCart
}

func TestNewOrderFromCart(t *testing.T) {
	t.Run("should freeze cart totals into the order snapshot", func(t *testing.T) {
		userID := kernel.NewUUID()
		testCart := buildCart(t, userID, 2000, 1500)
		now := time.Now()

		newOrder, err := order.NewOrderFromCart(
			kernel.NewUUID(), userID, kernel.NewUUID(), kernel.NewUUID(), testCart, now)

		require.NoError(t, err)
		require.NoError(t, newOrder.Validate())
		assert.Equal(t, 2, newOrder.TotalItem())
		assert.Equal(t, int64(3500), newOrder.TotalPrice().Amount())
		assert.Equal(t, order.Pending, newOrder.Status())
		assert.Equal(t, now, newOrder.CreatedAt())
		assert.Len(t, newOrder.Items(), 2)
	})

	t.Run("should copy cart items including ingredients", func(t *testing.T) {
		userID := kernel.NewUUID()
		testCart := buildCart(t, userID, 2000)

		newOrder, err := order.NewOrderFromCart(
			kernel.NewUUID(), userID, kernel.NewUUID(), kernel.NewUUID(), testCart, time.Now())
		require.NoError(t, err)

		items := newOrder.Items()
		require.Len(t, items, 1)
		sourceItem := testCart.Items()[0]

		assert.True(t, items[0].FoodID().IsEqual(sourceItem.FoodID()))
		assert.Equal(t, sourceItem.FoodName(), items[0].FoodName())
		assert.Equal(t, sourceItem.Quantity(), items[0].Quantity())
		assert.Equal(t, sourceItem.SpecialInstructions(), items[0].SpecialInstructions())
		assert.Equal(t, sourceItem.TotalPrice().Amount(), items[0].TotalPrice().Amount())

		ingredients := items[0].Ingredients()
		require.Len(t, ingredients, 1)
		assert.True(t, ingredients[0].ID().IsEqual(sourceItem.Ingredients()[0].ID()))
		assert.Equal(t, "Cheese", ingredients[0].Name())
	})

	t.Run("snapshot survives later cart mutation", func(t *testing.T) {
		userID := kernel.NewUUID()
		testCart := buildCart(t, userID, 2000, 1500)

		newOrder, err := order.NewOrderFromCart(
			kernel.NewUUID(), userID, kernel.NewUUID(), kernel.NewUUID(), testCart, time.Now())
		require.NoError(t, err)

		testCart.Clear()

		assert.Equal(t, 2, newOrder.TotalItem())
		assert.Equal(t, int64(3500), newOrder.TotalPrice().Amount())
		assert.Len(t, newOrder.Items(), 2)
	})

	t.Run("should reject an empty cart", func(t *testing.T) {
		userID := kernel.NewUUID()
		emptyCart, err := cart.NewCart(kernel.NewUUID(), userID)
		require.NoError(t, err)

		_, err = order.NewOrderFromCart(
			kernel.NewUUID(), userID, kernel.NewUUID(), kernel.NewUUID(), emptyCart, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrCartEmpty)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		userID := kernel.NewUUID()
		testCart := buildCart(t, userID, 2000)

		_, err := order.NewOrderFromCart(
			kernel.UUID{}, userID, kernel.NewUUID(), kernel.NewUUID(), testCart, time.Now())

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	placed := func(t *testing.T) *order.Order {
		t.Helper()
		userID := kernel.NewUUID()
		testCart := buildCart(t, userID, 2000)
		o, err := order.NewOrderFromCart(
			kernel.NewUUID(), userID, kernel.NewUUID(), kernel.NewUUID(), testCart, time.Now())
		require.NoError(t, err)
		return o
	}

	t.Run("forward transition succeeds", func(t *testing.T) {
		o := placed(t)

		require.NoError(t, o.ChangeStatus(order.Confirmed))
		assert.Equal(t, order.Confirmed, o.Status())

		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("level transition succeeds", func(t *testing.T) {
		o := placed(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))

		require.NoError(t, o.ChangeStatus(order.Confirmed))
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("backward transition is rejected and leaves status unchanged", func(t *testing.T) {
		o := placed(t)
		require.NoError(t, o.ChangeStatus(order.Delivered))

		err := o.ChangeStatus(order.Preparing)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrOrderStatusInvalid)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancellation succeeds from any prior status including Delivered", func(t *testing.T) {
		userID := kernel.NewUUID()
		testCart := buildCart(t, userID, 2000)
		o, err := order.NewOrderFromCart(
			kernel.NewUUID(), userID, kernel.NewUUID(), kernel.NewUUID(), testCart, time.Now())
		require.NoError(t, err)
		require.NoError(t, o.ChangeStatus(order.Delivered))

		o.Cancel()

		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a persisted order", func(t *testing.T) {
		item, err := order.RestoreOrderItem(
			kernel.NewUUID(), kernel.NewUUID(), "Margherita", 2, "", nil, mustPrice(t, 2000))
		require.NoError(t, err)

		createdAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
		restored, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			1, mustPrice(t, 2000), order.Preparing, createdAt, []order.OrderItem{item})

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, restored.Status())
		assert.Equal(t, createdAt, restored.CreatedAt())
		assert.Equal(t, 1, restored.TotalItem())
	})

	t.Run("should reject an undefined status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			1, mustPrice(t, 2000), order.Unknown, time.Now(), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrOrderStatusInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
