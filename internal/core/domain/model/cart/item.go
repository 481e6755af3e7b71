package cart

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrIngredientIsNotConstructed is returned when using an improperly initialized Ingredient.
	ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")
	// ErrCartItemIsNotConstructed is returned when using an improperly initialized CartItem.
	ErrCartItemIsNotConstructed = errors.New("CartItem must be created via NewCartItem constructor")
	// ErrFoodNameIsRequired is returned when a cart item references a food without a name.
	ErrFoodNameIsRequired = errs.NewValueIsRequiredError("food name")
	// ErrIngredientNameIsRequired is returned when an ingredient has no name.
	ErrIngredientNameIsRequired = errs.NewValueIsRequiredError("ingredient name")
)

// Ingredient is a selected ingredient reference carried by a cart item.
// It is an immutable value object identifying a catalog ingredient.
type Ingredient struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewIngredient creates an Ingredient referencing a catalog ingredient item.
// The id must be valid and the name non-empty.
func NewIngredient(id kernel.UUID, name string) (Ingredient, error) {
	if err := id.Validate(); err != nil {
		return Ingredient{}, err
	}
	if name == "" {
		return Ingredient{}, ErrIngredientNameIsRequired
	}

	return Ingredient{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Ingredient was created through NewIngredient.
func (i Ingredient) Validate() error {
	return i.guard.Validate(ErrIngredientIsNotConstructed)
}

// ID returns the catalog ingredient identifier.
func (i Ingredient) ID() kernel.UUID {
	return i.id
}

// Name returns the ingredient name.
func (i Ingredient) Name() string {
	return i.name
}

// CartItem is a food selection inside a cart: the referenced food, the
// quantity, the chosen ingredients, optional special instructions, and the
// computed total price for the line. A CartItem is owned exclusively by its
// Cart and is deleted when the cart is cleared.
type CartItem struct { //nolint:recvcheck //using for validation
	id                  kernel.UUID
	foodID              kernel.UUID
	foodName            string
	quantity            int
	specialInstructions string
	ingredients         []Ingredient
	totalPrice          kernel.Price

	guard guard.ConstructorGuard
}

// NewCartItem creates a cart item for the given food selection.
// The quantity must be positive and the ingredient set is copied, never
// shared with the caller's slice.
func NewCartItem(
	id kernel.UUID,
	foodID kernel.UUID,
	foodName string,
	quantity int,
	specialInstructions string,
	ingredients []Ingredient,
	totalPrice kernel.Price,
) (CartItem, error) {
	item := CartItem{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setFoodID(foodID),
		item.setFoodName(foodName),
		item.setQuantity(quantity),
		item.setIngredients(ingredients),
		item.setTotalPrice(totalPrice),
	); err != nil {
		return CartItem{}, err
	}

	return item, nil
}

// Validate ensures the CartItem was created through NewCartItem.
func (ci CartItem) Validate() error {
	return ci.guard.Validate(ErrCartItemIsNotConstructed)
}

// ID returns the cart item identifier.
func (ci CartItem) ID() kernel.UUID {
	return ci.id
}

// FoodID returns the referenced food identifier.
func (ci CartItem) FoodID() kernel.UUID {
	return ci.foodID
}

// FoodName returns the referenced food name.
func (ci CartItem) FoodName() string {
	return ci.foodName
}

// Quantity returns how many units of the food were selected.
func (ci CartItem) Quantity() int {
	return ci.quantity
}

// SpecialInstructions returns the free-form preparation note, possibly empty.
func (ci CartItem) SpecialInstructions() string {
	return ci.specialInstructions
}

// Ingredients returns a copy of the selected ingredient set.
func (ci CartItem) Ingredients() []Ingredient {
	out := make([]Ingredient, len(ci.ingredients))
	copy(out, ci.ingredients)
	return out
}

// TotalPrice returns the computed total for this line.
func (ci CartItem) TotalPrice() kernel.Price {
	return ci.totalPrice
}

func (ci *CartItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	ci.id = id
	return nil
}

func (ci *CartItem) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}
	ci.foodID = foodID
	return nil
}

func (ci *CartItem) setFoodName(foodName string) error {
	if foodName == "" {
		return ErrFoodNameIsRequired
	}
	ci.foodName = foodName
	return nil
}

func (ci *CartItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	ci.quantity = quantity
	return nil
}

func (ci *CartItem) setIngredients(ingredients []Ingredient) error {
	for _, ingredient := range ingredients {
		if err := ingredient.Validate(); err != nil {
			return err
		}
	}
	ci.ingredients = make([]Ingredient, len(ingredients))
	copy(ci.ingredients, ingredients)
	return nil
}

func (ci *CartItem) setTotalPrice(totalPrice kernel.Price) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	ci.totalPrice = totalPrice
	return nil
}
