package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrStartShipmentCommandIsNotConstructed = errors.New(
	"StartShipmentCommand must be created via NewStartShipmentCommand constructor",
)

// StartShipmentCommand represents a driver's request to mark an assigned
// order as picked up and on the road. Only the driver linked to the order's
// assigned vehicle may issue it.
type StartShipmentCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartShipmentCommand creates a command to start an order's shipment.
func NewStartShipmentCommand(principal auth.Principal, orderID kernel.UUID) (StartShipmentCommand, error) {
	cmd := StartShipmentCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StartShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartShipmentCommand) Validate() error {
	return c.guard.Validate(ErrStartShipmentCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c StartShipmentCommand) Principal() auth.Principal {
	return c.principal
}

// OrderID returns the order being shipped.
func (c StartShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
