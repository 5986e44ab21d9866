package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateDriverCommand represents an operator's request to register a driver,
// optionally linking an existing vehicle by its plate.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	principal    auth.Principal
	driverID     kernel.UUID
	name         string
	phone        string
	vehiclePlate string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Phone and vehiclePlate are optional.
func NewCreateDriverCommand(
	principal auth.Principal,
	driverID kernel.UUID,
	name string,
	phone string,
	vehiclePlate string,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		principal:    principal,
		phone:        phone,
		vehiclePlate: vehiclePlate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c CreateDriverCommand) Principal() auth.Principal {
	return c.principal
}

// DriverID returns the new driver's unique identifier.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the optional contact phone.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// VehiclePlate returns the plate of the vehicle to link, or empty.
func (c CreateDriverCommand) VehiclePlate() string {
	return c.vehiclePlate
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}
