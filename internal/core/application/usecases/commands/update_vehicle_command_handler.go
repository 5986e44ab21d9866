package commands

import (
	"context"

	"logistics/internal/pkg/auth"
)

// UpdateVehicleCommandHandler handles partial vehicle updates. Zone and
// driver references are verified to exist inside the same transaction that
// persists the change.
type UpdateVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle updates.
func NewUpdateVehicleCommandHandler(uowFactory FleetUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle update command.
func (h *UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) error {
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

	target, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if plate := cmd.Plate(); plate != nil {
		if err = target.ChangePlate(*plate); err != nil {
			return err
		}
	}

	if cmd.MaxWeightKg() != nil || cmd.MaxVolumeM3() != nil {
		maxWeightKg := target.MaxWeightKg()
		if cmd.MaxWeightKg() != nil {
			maxWeightKg = *cmd.MaxWeightKg()
		}
		maxVolumeM3 := target.MaxVolumeM3()
		if cmd.MaxVolumeM3() != nil {
			maxVolumeM3 = *cmd.MaxVolumeM3()
		}
		if err = target.ResizeCapacity(maxWeightKg, maxVolumeM3); err != nil {
			return err
		}
	}

	if zoneID := cmd.ZoneID(); zoneID != nil {
		if _, err = uow.ZoneRepository().Get(ctx, *zoneID); err != nil {
			return err
		}
		if err = target.AssignToZone(*zoneID); err != nil {
			return err
		}
	}

	if driverID := cmd.DriverID(); driverID != nil {
		if _, err = uow.DriverRepository().Get(ctx, *driverID); err != nil {
			return err
		}
		if err = target.LinkDriver(*driverID); err != nil {
			return err
		}
	}

	if err = uow.VehicleRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
