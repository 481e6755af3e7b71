package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines read access to the restaurant store.
type RestaurantRepository interface {
	// GetByID resolves a restaurant by identifier. A miss is reported as
	// the catalog RestaurantNotFound error.
	GetByID(ctx context.Context, restaurantID kernel.UUID) (*restaurant.Restaurant, error)

	// GetByOwnerEmail resolves the restaurant operated by the account with
	// the given email. A miss is reported as the catalog RestaurantNotFound
	// error.
	GetByOwnerEmail(ctx context.Context, email string) (*restaurant.Restaurant, error)
}
