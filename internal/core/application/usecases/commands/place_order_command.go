package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
)

// PlaceOrderCommand represents a request to convert a customer's cart into an order.
// Encapsulates the acting customer and the chosen restaurant and delivery address.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("alice@example.com", restaurantID, addressID)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	view, err := handler.Handle(ctx, kernel.RoleUser, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed with status %s", view.OrderID, view.Status)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerEmail string
	restaurantID  kernel.UUID
	addressID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order from the customer's cart.
// Validates that the customer email is present and both identifiers are valid.
// Returns an error if any validation fails.
func NewPlaceOrderCommand(
	customerEmail string,
	restaurantID kernel.UUID,
	addressID kernel.UUID,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setCustomerEmail(customerEmail),
		placeCommand.setRestaurantID(restaurantID),
		placeCommand.setAddressID(addressID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerEmail returns the email of the customer placing the order.
func (c PlaceOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// RestaurantID returns the identifier of the restaurant fulfilling the order.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// AddressID returns the identifier of the customer's delivery address.
func (c PlaceOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c *PlaceOrderCommand) setCustomerEmail(customerEmail string) error {
	if customerEmail == "" {
		return ErrCustomerEmailIsRequired
	}

	c.customerEmail = customerEmail
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}
