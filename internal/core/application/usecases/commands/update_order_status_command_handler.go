package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles restaurant-driven status transitions.
// Orders move forward through the status ladder; moving back is rejected, with
// cancellation as the single exception.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// The requested rank is checked before the order is loaded, so an out-of-range
// rank fails fast without touching the store. The transition itself is enforced
// by the order aggregate.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	actorRole kernel.Role,
	cmd UpdateOrderStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := kernel.RequireRole(actorRole, kernel.RoleRestaurant); err != nil {
		return err
	}

	nextStatus, err := order.StatusFromRank(cmd.StatusRank())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	trackedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = trackedOrder.ChangeStatus(nextStatus); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
