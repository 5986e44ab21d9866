package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrVehiclePlateIsRequired = errs.NewValueIsRequiredError("plate")
	ErrMaxWeightIsInvalid     = errors.New("max_weight_kg must be greater than 0")
	ErrMaxVolumeIsInvalid     = errors.New("max_volume_m3 must be greater than 0")
)

// CreateVehicleCommand represents an operator's request to add a vehicle to
// the fleet, optionally placing it into a service zone immediately.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	principal   auth.Principal
	vehicleID   kernel.UUID
	plate       string
	maxWeightKg float64
	maxVolumeM3 float64
	zoneID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
func NewCreateVehicleCommand(
	principal auth.Principal,
	vehicleID kernel.UUID,
	plate string,
	maxWeightKg float64,
	maxVolumeM3 float64,
	zoneID *kernel.UUID,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setPlate(plate),
		cmd.setMaxWeightKg(maxWeightKg),
		cmd.setMaxVolumeM3(maxVolumeM3),
		cmd.setZoneID(zoneID),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c CreateVehicleCommand) Principal() auth.Principal {
	return c.principal
}

// VehicleID returns the new vehicle's unique identifier.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Plate returns the vehicle's registration identifier.
func (c CreateVehicleCommand) Plate() string {
	return c.plate
}

// MaxWeightKg returns the vehicle's weight capacity in kilograms.
func (c CreateVehicleCommand) MaxWeightKg() float64 {
	return c.maxWeightKg
}

// MaxVolumeM3 returns the vehicle's volume capacity in cubic meters.
func (c CreateVehicleCommand) MaxVolumeM3() float64 {
	return c.maxVolumeM3
}

// ZoneID returns the optional service zone, or nil.
func (c CreateVehicleCommand) ZoneID() *kernel.UUID {
	return c.zoneID
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrVehiclePlateIsRequired
	}

	c.plate = plate
	return nil
}

func (c *CreateVehicleCommand) setMaxWeightKg(maxWeightKg float64) error {
	if maxWeightKg <= 0 {
		return ErrMaxWeightIsInvalid
	}

	c.maxWeightKg = maxWeightKg
	return nil
}

func (c *CreateVehicleCommand) setMaxVolumeM3(maxVolumeM3 float64) error {
	if maxVolumeM3 <= 0 {
		return ErrMaxVolumeIsInvalid
	}

	c.maxVolumeM3 = maxVolumeM3
	return nil
}

func (c *CreateVehicleCommand) setZoneID(zoneID *kernel.UUID) error {
	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return err
		}
	}

	c.zoneID = zoneID
	return nil
}
