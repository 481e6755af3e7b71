// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. Carts carry an optimistic-lock version column: every
// Update matches the loaded version and bumps it, so two concurrent writers
// cannot both win.
package cartrepo

import (
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// One cart per user, enforced by the unique index on user_id.
type CartDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	TotalPrice int64
	Version    int64
	Items      []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one selection in a cart.
type CartItemDTO struct {
	ID                  uuid.UUID               `gorm:"type:uuid;primaryKey"`
	CartID              uuid.UUID               `gorm:"type:uuid;index"`
	FoodID              uuid.UUID               `gorm:"type:uuid"`
	FoodName            string
	Quantity            int
	SpecialInstructions string
	TotalPrice          int64
	Ingredients         []CartItemIngredientDTO `gorm:"foreignKey:CartItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart item entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// CartItemIngredientDTO is a single ingredient row of a cart item. The
// primary key is composite so the same catalog ingredient can appear in any
// number of items.
type CartItemIngredientDTO struct {
	CartItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
}

// TableName specifies the database table name for cart item ingredients.
func (CartItemIngredientDTO) TableName() string {
	return "cart_item_ingredients"
}

// itemsFromDomain converts the cart's current items to their database rows.
func itemsFromDomain(aggregate *cart.Cart) []CartItemDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		ingredients := make([]CartItemIngredientDTO, 0, len(item.Ingredients()))
		for _, ingredient := range item.Ingredients() {
			ingredients = append(ingredients, CartItemIngredientDTO{
				CartItemID:   item.ID().Bytes(),
				IngredientID: ingredient.ID().Bytes(),
				Name:         ingredient.Name(),
			})
		}

		items = append(items, CartItemDTO{
			ID:                  item.ID().Bytes(),
			CartID:              aggregate.ID().Bytes(),
			FoodID:              item.FoodID().Bytes(),
			FoodName:            item.FoodName(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
			TotalPrice:          item.TotalPrice().Amount(),
			Ingredients:         ingredients,
		})
	}
	return items
}

// toDomain converts a database DTO to a cart aggregate using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]cart.CartItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(id, userID, items, totalPrice, dto.Version)
}

func itemToDomain(dto CartItemDTO) (cart.CartItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return cart.CartItem{}, err
	}
	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return cart.CartItem{}, err
	}
	totalPrice, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return cart.CartItem{}, err
	}

	ingredients := make([]cart.Ingredient, 0, len(dto.Ingredients))
	for _, ingredientDTO := range dto.Ingredients {
		ingredientID, ingErr := kernel.UUIDFromBytes(ingredientDTO.IngredientID[:])
		if ingErr != nil {
			return cart.CartItem{}, ingErr
		}
		ingredient, ingErr := cart.NewIngredient(ingredientID, ingredientDTO.Name)
		if ingErr != nil {
			return cart.CartItem{}, ingErr
		}
		ingredients = append(ingredients, ingredient)
	}

	return cart.NewCartItem(
		id,
		foodID,
		dto.FoodName,
		dto.Quantity,
		dto.SpecialInstructions,
		ingredients,
		totalPrice,
	)
}
