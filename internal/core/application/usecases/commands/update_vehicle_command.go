package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a partial update of a vehicle: plate,
// capacity limits, zone membership or driver link. Nil fields keep their
// current value.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	principal   auth.Principal
	vehicleID   kernel.UUID
	plate       *string
	maxWeightKg *float64
	maxVolumeM3 *float64
	zoneID      *kernel.UUID
	driverID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to update a vehicle. Every field
// after the vehicle ID is optional.
func NewUpdateVehicleCommand(
	principal auth.Principal,
	vehicleID kernel.UUID,
	plate *string,
	maxWeightKg *float64,
	maxVolumeM3 *float64,
	zoneID *kernel.UUID,
	driverID *kernel.UUID,
) (UpdateVehicleCommand, error) {
	cmd := UpdateVehicleCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setPlate(plate),
		cmd.setMaxWeightKg(maxWeightKg),
		cmd.setMaxVolumeM3(maxVolumeM3),
		cmd.setZoneID(zoneID),
		cmd.setDriverID(driverID),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c UpdateVehicleCommand) Principal() auth.Principal {
	return c.principal
}

// VehicleID returns the vehicle to update.
func (c UpdateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Plate returns the new registration identifier, or nil to keep the current one.
func (c UpdateVehicleCommand) Plate() *string {
	return c.plate
}

// MaxWeightKg returns the new weight capacity, or nil to keep the current one.
func (c UpdateVehicleCommand) MaxWeightKg() *float64 {
	return c.maxWeightKg
}

// MaxVolumeM3 returns the new volume capacity, or nil to keep the current one.
func (c UpdateVehicleCommand) MaxVolumeM3() *float64 {
	return c.maxVolumeM3
}

// ZoneID returns the new service zone, or nil to keep the current one.
func (c UpdateVehicleCommand) ZoneID() *kernel.UUID {
	return c.zoneID
}

// DriverID returns the new driver link, or nil to keep the current one.
func (c UpdateVehicleCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *UpdateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateVehicleCommand) setPlate(plate *string) error {
	if plate != nil && *plate == "" {
		return ErrVehiclePlateIsRequired
	}

	c.plate = plate
	return nil
}

func (c *UpdateVehicleCommand) setMaxWeightKg(maxWeightKg *float64) error {
	if maxWeightKg != nil && *maxWeightKg <= 0 {
		return ErrMaxWeightIsInvalid
	}

	c.maxWeightKg = maxWeightKg
	return nil
}

func (c *UpdateVehicleCommand) setMaxVolumeM3(maxVolumeM3 *float64) error {
	if maxVolumeM3 != nil && *maxVolumeM3 <= 0 {
		return ErrMaxVolumeIsInvalid
	}

	c.maxVolumeM3 = maxVolumeM3
	return nil
}

func (c *UpdateVehicleCommand) setZoneID(zoneID *kernel.UUID) error {
	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return err
		}
	}

	c.zoneID = zoneID
	return nil
}

func (c *UpdateVehicleCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	c.driverID = driverID
	return nil
}
