package commands

import (
	"context"
	"errors"

	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
)

// DeleteDriverCommandHandler handles driver removal. A vehicle linked to
// the driver is detached, not deleted, in the same transaction.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver deletion.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver deletion command.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	driverRepo := uow.DriverRepository()
	target, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	vehicleRepo := uow.VehicleRepository()
	linkedVehicle, err := vehicleRepo.GetByDriver(ctx, target.ID())
	switch {
	case err == nil:
		linkedVehicle.UnlinkDriver()
		if err = vehicleRepo.Update(ctx, linkedVehicle); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// No vehicle to detach.
	default:
		return err
	}

	if err = driverRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
