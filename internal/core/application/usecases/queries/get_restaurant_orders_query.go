package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var (
	ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
		"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
	)
	ErrOwnerEmailIsRequired = errors.New("owner email is required")
)

// GetRestaurantOrdersQuery retrieves the incoming orders of the restaurant
// operated by the given owner account. A negative rank lists every order;
// a non-negative rank filters to that exact status.
//
// Example:
//
//	query, err := NewGetRestaurantOrdersQuery("owner@crust.example", -1)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	handler := NewGetRestaurantOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetRestaurantOrdersQuery struct { //nolint:recvcheck //using for validation
	ownerEmail string
	statusRank int

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for a restaurant's orders.
// Validates that the owner email is present; the rank is checked by the handler.
func NewGetRestaurantOrdersQuery(ownerEmail string, statusRank int) (GetRestaurantOrdersQuery, error) {
	query := GetRestaurantOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if ownerEmail == "" {
		return GetRestaurantOrdersQuery{}, ErrOwnerEmailIsRequired
	}
	query.ownerEmail = ownerEmail
	query.statusRank = statusRank

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantOrdersQueryIsNotConstructed if validation fails.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// OwnerEmail returns the email of the restaurant owner account.
func (q GetRestaurantOrdersQuery) OwnerEmail() string {
	return q.ownerEmail
}

// StatusRank returns the requested status filter rank. Negative means no filter.
func (q GetRestaurantOrdersQuery) StatusRank() int {
	return q.statusRank
}
