package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are owned by exactly one store keyed by id; users and restaurants
// reach their orders through queries, not embedded collections.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the mutable status field ever changes after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with its
	// items eagerly loaded. A miss is reported as the catalog OrderNotFound
	// error, never an empty result.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
