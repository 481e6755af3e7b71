// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order snapshot is immutable after placement, so the
// DTO tree (order, items, ingredient rows) is written once and only the
// status column changes afterwards.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer, restaurant, and status to serve both listing queries.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;index"`
	AddressID    uuid.UUID      `gorm:"type:uuid"`
	TotalItem    int
	TotalPrice   int64
	Status       int            `gorm:"index"`
	CreatedAt    time.Time
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line of an order snapshot.
type OrderItemDTO struct {
	ID                  uuid.UUID                `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID                `gorm:"type:uuid;index"`
	FoodID              uuid.UUID                `gorm:"type:uuid"`
	FoodName            string
	Quantity            int
	SpecialInstructions string
	TotalPrice          int64
	Ingredients         []OrderItemIngredientDTO `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderItemIngredientDTO is a single ingredient row of an order line. The
// primary key is composite so the same catalog ingredient can appear on any
// number of lines.
type OrderItemIngredientDTO struct {
	OrderItemID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
}

// TableName specifies the database table name for order line ingredients.
func (OrderItemIngredientDTO) TableName() string {
	return "order_item_ingredients"
}

// fromDomain converts an order aggregate to its database representation,
// including the full item and ingredient tree.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		ingredients := make([]OrderItemIngredientDTO, 0, len(item.Ingredients()))
		for _, ingredient := range item.Ingredients() {
			ingredients = append(ingredients, OrderItemIngredientDTO{
				OrderItemID:  item.ID().Bytes(),
				IngredientID: ingredient.ID().Bytes(),
				Name:         ingredient.Name(),
			})
		}

		items = append(items, OrderItemDTO{
			ID:                  item.ID().Bytes(),
			OrderID:             aggregate.ID().Bytes(),
			FoodID:              item.FoodID().Bytes(),
			FoodName:            item.FoodName(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
			TotalPrice:          item.TotalPrice().Amount(),
			Ingredients:         ingredients,
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		AddressID:    aggregate.AddressID().Bytes(),
		TotalItem:    aggregate.TotalItem(),
		TotalPrice:   aggregate.TotalPrice().Amount(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		addressID,
		dto.TotalItem,
		totalPrice,
		order.Status(dto.Status),
		dto.CreatedAt,
		items,
	)
}

func itemToDomain(dto OrderItemDTO) (order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.OrderItem{}, err
	}
	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return order.OrderItem{}, err
	}
	totalPrice, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return order.OrderItem{}, err
	}

	ingredients := make([]order.Ingredient, 0, len(dto.Ingredients))
	for _, ingredientDTO := range dto.Ingredients {
		ingredientID, ingErr := kernel.UUIDFromBytes(ingredientDTO.IngredientID[:])
		if ingErr != nil {
			return order.OrderItem{}, ingErr
		}
		ingredient, ingErr := order.RestoreIngredient(ingredientID, ingredientDTO.Name)
		if ingErr != nil {
			return order.OrderItem{}, ingErr
		}
		ingredients = append(ingredients, ingredient)
	}

	return order.RestoreOrderItem(
		id,
		foodID,
		dto.FoodName,
		dto.Quantity,
		dto.SpecialInstructions,
		ingredients,
		totalPrice,
	)
}
