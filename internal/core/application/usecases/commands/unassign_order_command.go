package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/guard"
)

var ErrUnassignOrderCommandIsNotConstructed = errors.New(
	"UnassignOrderCommand must be created via NewUnassignOrderCommand constructor",
)

// UnassignOrderCommand represents a request to return an assigned order to
// the pending pool. The vehicle's capacity is freed the instant the
// transition commits.
type UnassignOrderCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignOrderCommand creates a command to unassign an order.
func NewUnassignOrderCommand(principal auth.Principal, orderID kernel.UUID) (UnassignOrderCommand, error) {
	cmd := UnassignOrderCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UnassignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnassignOrderCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c UnassignOrderCommand) Principal() auth.Principal {
	return c.principal
}

// OrderID returns the order to unassign.
func (c UnassignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *UnassignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
