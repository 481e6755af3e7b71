// Package queries contains read-only operations that project system state.
// Implements the Query side of the CQRS architecture: handlers read through
// raw SQL instead of loading aggregates, and return flat view models.
package queries

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// OrderView is the list projection of an order. The customer summary is
// intentionally absent: both the customer's own listing and the restaurant's
// listing omit it, only the placement response carries the customer.
type OrderView struct {
	ID         kernel.UUID
	Status     string
	StatusRank int
	TotalItem  int
	TotalPrice int64
	CreatedAt  time.Time
	Restaurant string
	Address    OrderAddressView
	Items      []OrderLineView
}

// OrderAddressView is the delivery address snapshot shown in order listings.
type OrderAddressView struct {
	Street   string
	City     string
	Postcode string
}

// OrderLineView is a single order line with its ingredient names expanded.
type OrderLineView struct {
	FoodName            string
	Quantity            int
	SpecialInstructions string
	TotalPrice          int64
	Ingredients         []string
}
