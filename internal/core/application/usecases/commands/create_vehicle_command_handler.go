package commands

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/auth"
)

// CreateVehicleCommandHandler handles adding a vehicle to the fleet.
// When a zone is specified it must exist at creation time.
type CreateVehicleCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle creation.
func NewCreateVehicleCommandHandler(uowFactory ZoneUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle creation command.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
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

	if cmd.ZoneID() != nil {
		if _, err := uow.ZoneRepository().Get(ctx, *cmd.ZoneID()); err != nil {
			return err
		}
	}

	newVehicle, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.Plate(),
		cmd.MaxWeightKg(),
		cmd.MaxVolumeM3(),
		cmd.ZoneID(),
	)
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, newVehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
