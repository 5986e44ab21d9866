package commands

import (
	"context"

	"logistics/internal/pkg/auth"
)

// UnassignOrderCommandHandler handles returning an assigned order to the
// pending pool. The order's vehicle reference is cleared and the freed
// capacity is visible to every ledger query from the commit on.
type UnassignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnassignOrderCommandHandler creates a handler for order unassignment.
func NewUnassignOrderCommandHandler(uowFactory OrderUoWFactory) UnassignOrderCommandHandler {
	return UnassignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order unassignment command.
func (h *UnassignOrderCommandHandler) Handle(ctx context.Context, cmd UnassignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := requireRole(cmd.Principal(), auth.RoleAdmin); err != nil {
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
	assignedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = assignedOrder.Unassign(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
