// Package restaurantrepo provides read-side persistence for restaurants.
package restaurantrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
// The owner's account email doubles as the operator login, hence the
// unique index.
type RestaurantDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	OwnerEmail string    `gorm:"uniqueIndex"`
	Open       bool
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// toDomain converts a database DTO to a restaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.OwnerEmail, dto.Open)
}
