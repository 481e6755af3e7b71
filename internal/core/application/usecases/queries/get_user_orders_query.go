package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
)

// GetUserOrdersQuery retrieves a customer's orders in a given status.
// The customer listing always filters by status: there is no "all orders"
// variant on the user side.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery("alice@example.com", 1)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	handler := NewGetUserOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d pending orders\n", len(orders))
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	customerEmail string
	statusRank    int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a customer's orders.
// Validates that the email is present; the rank is checked by the handler.
func NewGetUserOrdersQuery(customerEmail string, statusRank int) (GetUserOrdersQuery, error) {
	query := GetUserOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if customerEmail == "" {
		return GetUserOrdersQuery{}, ErrCustomerEmailIsRequired
	}
	query.customerEmail = customerEmail
	query.statusRank = statusRank

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// CustomerEmail returns the email of the customer whose orders are listed.
func (q GetUserOrdersQuery) CustomerEmail() string {
	return q.customerEmail
}

// StatusRank returns the requested status filter rank.
func (q GetUserOrdersQuery) StatusRank() int {
	return q.statusRank
}
