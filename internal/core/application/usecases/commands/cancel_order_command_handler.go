package commands

import (
	"context"

	"logistics/internal/pkg/auth"
)

// CancelOrderCommandHandler handles order cancellation. Cancelling an
// assigned order clears its vehicle reference, freeing the capacity at
// commit; cancelling a pending order only flips its status.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// Admins may cancel any order; shippers only orders they created.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := requireRole(cmd.Principal(), auth.RoleAdmin, auth.RoleShipper); err != nil {
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
	targetOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Principal().Role == auth.RoleShipper && !targetOrder.ShipperID().IsEqual(cmd.Principal().ID) {
		return ErrPermissionDenied
	}

	if err = targetOrder.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
