package commands

import (
	"context"

	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
)

// DeleteVehicleCommandHandler handles removing a vehicle from the fleet.
// The dependent-order check and the delete happen in one transaction, so a
// concurrent assignment cannot slip in between.
type DeleteVehicleCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle deletion.
func NewDeleteVehicleCommandHandler(uowFactory DispatchUoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle deletion command.
// Returns a ReferentialConflictError while active orders reference the vehicle.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	target, err := vehicleRepo.GetWithLock(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	activeOrders, err := uow.OrderRepository().GetActiveByVehicle(ctx, target.ID())
	if err != nil {
		return err
	}

	if len(activeOrders) > 0 {
		return errs.NewReferentialConflictError("vehicle", target.ID().String(), len(activeOrders))
	}

	if err = vehicleRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
