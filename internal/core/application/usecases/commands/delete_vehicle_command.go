package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand represents a request to remove a vehicle from the
// fleet. Deletion is refused while any order referencing the vehicle is
// still ASSIGNED or SHIPPED.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates a command to delete a vehicle.
func NewDeleteVehicleCommand(principal auth.Principal, vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	cmd := DeleteVehicleCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setVehicleID(vehicleID); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c DeleteVehicleCommand) Principal() auth.Principal {
	return c.principal
}

// VehicleID returns the vehicle to delete.
func (c DeleteVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *DeleteVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
