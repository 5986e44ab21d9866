package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item_name")
	ErrWeightIsInvalid    = errors.New("weight_kg must be greater than 0")
)

// CreateOrderCommand represents a shipper's request to register a new order.
// Carries the package dimensions and weight, the pickup and drop coordinates,
// and optional display addresses. Volume is never supplied: it is derived
// from the dimensions by the order aggregate.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(principal, kernel.NewUUID(),
//	    "pallet of tiles", dims, 600, pickup, "", drop, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal     auth.Principal
	orderID       kernel.UUID
	itemName      string
	dimensions    kernel.BoxDimensions
	weightKg      float64
	pickup        kernel.GeoPoint
	pickupAddress string
	drop          kernel.GeoPoint
	dropAddress   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the order ID, item name, dimensions, weight and both
// coordinates. Addresses may be empty; the handler enriches them.
func NewCreateOrderCommand(
	principal auth.Principal,
	orderID kernel.UUID,
	itemName string,
	dimensions kernel.BoxDimensions,
	weightKg float64,
	pickup kernel.GeoPoint,
	pickupAddress string,
	drop kernel.GeoPoint,
	dropAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		principal:     principal,
		pickupAddress: pickupAddress,
		dropAddress:   dropAddress,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemName(itemName),
		cmd.setDimensions(dimensions),
		cmd.setWeightKg(weightKg),
		cmd.setPickup(pickup),
		cmd.setDrop(drop),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Principal returns the authenticated caller.
func (c CreateOrderCommand) Principal() auth.Principal {
	return c.principal
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemName returns the human-readable description of the cargo.
func (c CreateOrderCommand) ItemName() string {
	return c.itemName
}

// Dimensions returns the package dimensions.
func (c CreateOrderCommand) Dimensions() kernel.BoxDimensions {
	return c.dimensions
}

// WeightKg returns the package weight in kilograms.
func (c CreateOrderCommand) WeightKg() float64 {
	return c.weightKg
}

// Pickup returns the pickup coordinate.
func (c CreateOrderCommand) Pickup() kernel.GeoPoint {
	return c.pickup
}

// PickupAddress returns the pickup display address, possibly empty.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// Drop returns the drop-off coordinate.
func (c CreateOrderCommand) Drop() kernel.GeoPoint {
	return c.drop
}

// DropAddress returns the drop-off display address, possibly empty.
func (c CreateOrderCommand) DropAddress() string {
	return c.dropAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}

func (c *CreateOrderCommand) setDimensions(dimensions kernel.BoxDimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *CreateOrderCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateOrderCommand) setDrop(drop kernel.GeoPoint) error {
	if err := drop.Validate(); err != nil {
		return err
	}

	c.drop = drop
	return nil
}
