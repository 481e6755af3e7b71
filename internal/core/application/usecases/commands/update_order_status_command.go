package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a restaurant's request to move an order
// to a new status. The target status is expressed by its numeric rank as it
// arrives on the wire; rank validation happens in the handler so that invalid
// ranks are rejected before the order is even looked up.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, kernel.RoleRestaurant, cmd); err != nil {
//	    return fmt.Errorf("failed to update status: %w", err)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	statusRank int

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates the order identifier; the rank is carried as-is.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, statusRank int) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := statusCommand.setOrderID(orderID); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	statusCommand.statusRank = statusRank

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StatusRank returns the requested target status rank.
func (c UpdateOrderStatusCommand) StatusRank() int {
	return c.statusRank
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
