package order

import (
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrOrderItemIsNotConstructed is returned when using an improperly initialized OrderItem.
	ErrOrderItemIsNotConstructed = errors.New(
		"OrderItem must be created via NewOrderItemFromCart or RestoreOrderItem constructor")
)

// Ingredient is a point-in-time copy of a selected ingredient, owned by an
// OrderItem. Unlike the cart's ingredient set, this copy never changes after
// order placement.
type Ingredient struct {
	id   kernel.UUID
	name string
}

// RestoreIngredient reconstructs an ingredient copy from persistence.
func RestoreIngredient(id kernel.UUID, name string) (Ingredient, error) {
	if err := id.Validate(); err != nil {
		return Ingredient{}, err
	}
	return Ingredient{id: id, name: name}, nil
}

// ID returns the catalog ingredient identifier.
func (i Ingredient) ID() kernel.UUID {
	return i.id
}

// Name returns the ingredient name at placement time.
func (i Ingredient) Name() string {
	return i.name
}

// OrderItem is a frozen copy of a cart item taken at placement time: the
// food reference, quantity, selected ingredients, special instructions, and
// the line's total price. It is owned exclusively by its Order.
type OrderItem struct { //nolint:recvcheck //using for validation
	id                  kernel.UUID
	foodID              kernel.UUID
	foodName            string
	quantity            int
	specialInstructions string
	ingredients         []Ingredient
	totalPrice          kernel.Price

	guard guard.ConstructorGuard
}

// NewOrderItemFromCart snapshots a cart item into an order item. The
// ingredient set is copied into order-owned values, never shared with the
// cart item, so later cart mutations cannot leak into the placed order.
func NewOrderItemFromCart(cartItem cart.CartItem) (OrderItem, error) {
	if err := cartItem.Validate(); err != nil {
		return OrderItem{}, err
	}

	selected := cartItem.Ingredients()
	ingredients := make([]Ingredient, 0, len(selected))
	for _, ingredient := range selected {
		ingredients = append(ingredients, Ingredient{
			id:   ingredient.ID(),
			name: ingredient.Name(),
		})
	}

	return OrderItem{
		id:                  kernel.NewUUID(),
		foodID:              cartItem.FoodID(),
		foodName:            cartItem.FoodName(),
		quantity:            cartItem.Quantity(),
		specialInstructions: cartItem.SpecialInstructions(),
		ingredients:         ingredients,
		totalPrice:          cartItem.TotalPrice(),
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderItem reconstructs an order item from persistence.
func RestoreOrderItem(
	id kernel.UUID,
	foodID kernel.UUID,
	foodName string,
	quantity int,
	specialInstructions string,
	ingredients []Ingredient,
	totalPrice kernel.Price,
) (OrderItem, error) {
	if err := errors.Join(id.Validate(), foodID.Validate(), totalPrice.Validate()); err != nil {
		return OrderItem{}, err
	}

	owned := make([]Ingredient, len(ingredients))
	copy(owned, ingredients)

	return OrderItem{
		id:                  id,
		foodID:              foodID,
		foodName:            foodName,
		quantity:            quantity,
		specialInstructions: specialInstructions,
		ingredients:         owned,
		totalPrice:          totalPrice,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the OrderItem was created through a constructor.
func (oi OrderItem) Validate() error {
	return oi.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the order item identifier.
func (oi OrderItem) ID() kernel.UUID {
	return oi.id
}

// FoodID returns the referenced food identifier.
func (oi OrderItem) FoodID() kernel.UUID {
	return oi.foodID
}

// FoodName returns the food name at placement time.
func (oi OrderItem) FoodName() string {
	return oi.foodName
}

// Quantity returns the ordered quantity.
func (oi OrderItem) Quantity() int {
	return oi.quantity
}

// SpecialInstructions returns the preparation note copied from the cart item.
func (oi OrderItem) SpecialInstructions() string {
	return oi.specialInstructions
}

// Ingredients returns a copy of the frozen ingredient set.
func (oi OrderItem) Ingredients() []Ingredient {
	out := make([]Ingredient, len(oi.ingredients))
	copy(out, oi.ingredients)
	return out
}

// TotalPrice returns the line total frozen at placement time.
func (oi OrderItem) TotalPrice() kernel.Price {
	return oi.totalPrice
}
