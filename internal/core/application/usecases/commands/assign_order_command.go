package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to assign a pending order to a
// specific vehicle. The headroom check the operator saw in the candidate
// list is stale by definition; the handler re-validates inside the
// transaction.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to a vehicle.
func NewAssignOrderCommand(principal auth.Principal, orderID, vehicleID kernel.UUID) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c AssignOrderCommand) Principal() auth.Principal {
	return c.principal
}

// OrderID returns the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleID returns the vehicle receiving the order.
func (c AssignOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
