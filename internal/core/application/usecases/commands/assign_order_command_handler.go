package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
)

// AssignOrderCommandHandler handles the business logic for order assignment.
//
// The headroom re-check and the status write happen in one transaction with
// the vehicle row locked, so two concurrent assignments against the same
// vehicle cannot both observe sufficient headroom and both commit. On a
// capacity violation the transaction rolls back and the ledger state is left
// exactly as it was.
type AssignOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	ledger     services.CapacityLedger
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(uowFactory DispatchUoWFactory, ledger services.CapacityLedger) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the order assignment command.
// Returns a CapacityExceededError when the order no longer fits the vehicle.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	// Row lock on the vehicle serializes concurrent assignments against it.
	assignee, err := uow.VehicleRepository().GetWithLock(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	pendingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	activeOrders, err := orderRepo.GetActiveByVehicle(ctx, assignee.ID())
	if err != nil {
		return err
	}

	ok, err := h.ledger.CanAccept(assignee, pendingOrder, activeOrders)
	if err != nil {
		return err
	}
	if !ok {
		return h.capacityError(assignee, pendingOrder, activeOrders)
	}

	if err = pendingOrder.Assign(assignee.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// capacityError names the dimension that refused the order.
func (h *AssignOrderCommandHandler) capacityError(
	assignee *vehicle.Vehicle,
	candidate *order.Order,
	activeOrders []*order.Order,
) error {
	load, err := h.ledger.CurrentLoad(assignee, activeOrders)
	if err != nil {
		return err
	}

	attemptedWeight := load.WeightKg + candidate.WeightKg()
	if attemptedWeight > assignee.MaxWeightKg() {
		return errs.NewCapacityExceededError(
			assignee.ID().String(), errs.DimensionWeight, attemptedWeight, assignee.MaxWeightKg())
	}

	return errs.NewCapacityExceededError(
		assignee.ID().String(), errs.DimensionVolume, load.VolumeM3+candidate.VolumeM3(), assignee.MaxVolumeM3())
}
