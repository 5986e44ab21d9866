package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

// DeleteDriverCommand represents a request to remove a driver. Any vehicle
// linked to the driver is detached in the same transaction.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDriverCommand creates a command to delete a driver.
func NewDeleteDriverCommand(principal auth.Principal, driverID kernel.UUID) (DeleteDriverCommand, error) {
	cmd := DeleteDriverCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return DeleteDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c DeleteDriverCommand) Principal() auth.Principal {
	return c.principal
}

// DriverID returns the driver to delete.
func (c DeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *DeleteDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
