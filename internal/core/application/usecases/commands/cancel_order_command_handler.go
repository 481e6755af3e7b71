package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// CancelOrderCommandHandler handles customer-driven order cancellation.
// Cancellation is accepted from any current status, including Delivered.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Loads the order, marks it cancelled, and persists the change.
func (h *CancelOrderCommandHandler) Handle(
	ctx context.Context,
	actorRole kernel.Role,
	cmd CancelOrderCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := kernel.RequireRole(actorRole, kernel.RoleUser); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	trackedOrder.Cancel()

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
