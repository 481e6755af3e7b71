package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// PlacedOrderView is the projection returned to the customer right after placement.
// It is the only read model that carries the customer summary; list projections
// deliberately omit it.
type PlacedOrderView struct {
	OrderID    string
	Status     string
	StatusRank int
	TotalItem  int
	TotalPrice int64
	CreatedAt  time.Time
	Customer   PlacedOrderCustomerView
	Restaurant string
	Address    PlacedOrderAddressView
	Items      []PlacedOrderItemView
}

// PlacedOrderCustomerView summarizes the customer who placed the order.
type PlacedOrderCustomerView struct {
	FullName string
	Email    string
}

// PlacedOrderAddressView is the delivery address snapshot of the placement response.
type PlacedOrderAddressView struct {
	Street   string
	City     string
	Postcode string
}

// PlacedOrderItemView is a single line of the placed order with its ingredient names.
type PlacedOrderItemView struct {
	FoodName            string
	Quantity            int
	SpecialInstructions string
	TotalPrice          int64
	Ingredients         []string
}

// PlaceOrderCommandHandler handles the business logic for order placement.
// Converts the customer's cart into an immutable order snapshot and empties the cart,
// both inside a single transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand("alice@example.com", restaurantID, addressID)
//
//	view, err := handler.Handle(ctx, kernel.RoleUser, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// view.Status == "PENDING", the cart is now empty
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a PlacementUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command on behalf of a customer.
// Resolves the restaurant, the customer with their addresses, and the cart,
// then snapshots the cart into a pending order and clears the cart. The order
// insert and the cart update either both commit or both roll back.
func (h *PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	actorRole kernel.Role,
	cmd PlaceOrderCommand,
) (PlacedOrderView, error) {
	if err := cmd.Validate(); err != nil {
		return PlacedOrderView{}, err
	}

	if err := kernel.RequireRole(actorRole, kernel.RoleUser); err != nil {
		return PlacedOrderView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlacedOrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	chosenRestaurant, err := uow.RestaurantRepository().GetByID(ctx, cmd.RestaurantID())
	if err != nil {
		return PlacedOrderView{}, err
	}

	customer, err := uow.UserRepository().GetByEmailWithAddresses(ctx, cmd.CustomerEmail())
	if err != nil {
		return PlacedOrderView{}, err
	}

	deliveryAddress, err := customer.AddressByID(cmd.AddressID())
	if err != nil {
		return PlacedOrderView{}, err
	}

	customerCart, err := uow.CartRepository().GetByUserIDWithItems(ctx, customer.ID())
	if err != nil {
		return PlacedOrderView{}, err
	}

	placedOrder, err := order.NewOrderFromCart(
		kernel.NewUUID(),
		customer.ID(),
		chosenRestaurant.ID(),
		deliveryAddress.ID(),
		customerCart,
		time.Now().UTC(),
	)
	if err != nil {
		return PlacedOrderView{}, err
	}

	if err = uow.OrderRepository().Add(ctx, placedOrder); err != nil {
		return PlacedOrderView{}, err
	}

	customerCart.Clear()
	if err = uow.CartRepository().Update(ctx, customerCart); err != nil {
		return PlacedOrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlacedOrderView{}, err
	}

	return newPlacedOrderView(placedOrder, customer.FullName(), customer.Email(),
		chosenRestaurant.Name(), deliveryAddress), nil
}

func newPlacedOrderView(
	placedOrder *order.Order,
	customerName string,
	customerEmail string,
	restaurantName string,
	deliveryAddress account.Address,
) PlacedOrderView {
	items := make([]PlacedOrderItemView, 0, len(placedOrder.Items()))
	for _, item := range placedOrder.Items() {
		ingredients := make([]string, 0, len(item.Ingredients()))
		for _, ingredient := range item.Ingredients() {
			ingredients = append(ingredients, ingredient.Name())
		}

		items = append(items, PlacedOrderItemView{
			FoodName:            item.FoodName(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
			TotalPrice:          item.TotalPrice().Amount(),
			Ingredients:         ingredients,
		})
	}

	return PlacedOrderView{
		OrderID:    placedOrder.ID().String(),
		Status:     placedOrder.Status().String(),
		StatusRank: placedOrder.Status().Rank(),
		TotalItem:  placedOrder.TotalItem(),
		TotalPrice: placedOrder.TotalPrice().Amount(),
		CreatedAt:  placedOrder.CreatedAt(),
		Customer: PlacedOrderCustomerView{
			FullName: customerName,
			Email:    customerEmail,
		},
		Restaurant: restaurantName,
		Address: PlacedOrderAddressView{
			Street:   deliveryAddress.Street(),
			City:     deliveryAddress.City(),
			Postcode: deliveryAddress.Postcode(),
		},
		Items: items,
	}
}
